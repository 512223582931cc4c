package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/grid-chain/grid/api"
	"github.com/grid-chain/grid/app"
)

func main() {
	app.SetConfig()

	encCfg := app.MakeEncodingConfig()

	nodeURI := getEnv("NODE_URI", "tcp://localhost:26657")
	chainID := getEnv("CHAIN_ID", "grid-1")

	rpcClient, err := client.NewClientFromNode(nodeURI)
	if err != nil {
		log.Fatalf("Failed to create RPC client for %s: %v", nodeURI, err)
	}

	clientCtx := client.Context{}.
		WithCodec(encCfg.Codec).
		WithInterfaceRegistry(encCfg.InterfaceRegistry).
		WithTxConfig(encCfg.TxConfig).
		WithLegacyAmino(encCfg.Amino).
		WithInput(os.Stdin).
		WithOutput(os.Stdout).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithBroadcastMode(flags.BroadcastSync).
		WithHomeDir(os.ExpandEnv("$HOME/.grid")).
		WithChainID(chainID).
		WithNodeURI(nodeURI).
		WithClient(rpcClient)

	serverConfig := api.DefaultConfig()
	serverConfig.Host = getEnv("API_HOST", "0.0.0.0")
	serverConfig.Port = getEnv("API_PORT", "5000")
	serverConfig.ChainID = chainID
	serverConfig.NodeURI = nodeURI
	serverConfig.JWTSecret = []byte(os.Getenv("JWT_SECRET"))
	serverConfig.AuditPostgresDSN = os.Getenv("AUDIT_POSTGRES_DSN")

	server, err := api.NewServer(clientCtx, serverConfig)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	fmt.Println("╔═══════════════════════════════════════════════════╗")
	fmt.Println("║         GridChain Market API Server               ║")
	fmt.Println("╚═══════════════════════════════════════════════════╝")
	fmt.Printf("\nServer Configuration:\n")
	fmt.Printf("  - Host: %s\n", serverConfig.Host)
	fmt.Printf("  - Port: %s\n", serverConfig.Port)
	fmt.Printf("  - Chain ID: %s\n", serverConfig.ChainID)
	fmt.Printf("  - Node URI: %s\n", serverConfig.NodeURI)
	fmt.Printf("\nAPI Endpoints:\n")
	fmt.Printf("  - Health: http://%s:%s/health\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Auth: http://%s:%s/api/auth/*\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Resources: http://%s:%s/api/resources\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Auctions: http://%s:%s/api/auctions\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - Jobs: http://%s:%s/api/jobs\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("  - WebSocket: ws://%s:%s/ws\n", serverConfig.Host, serverConfig.Port)
	fmt.Printf("\nPress Ctrl+C to stop the server\n\n")

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
