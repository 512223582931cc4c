package api

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ==================== Transaction Handlers ====================

// handleBroadcastTx relays a signed transaction to the backing node. The
// gateway never signs; clients submit fully signed tx bytes produced by
// their own wallet.
func (s *Server) handleBroadcastTx(c *gin.Context) {
	userID, username, _, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Authentication required",
			Code:  "UNAUTHORIZED",
		})
		return
	}

	var req BroadcastTxRequest
	if err := ValidateAndBindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Details: err.Error(),
			Code:    "INVALID_REQUEST",
		})
		return
	}

	txBytes, err := ValidateBroadcastTxRequest(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid transaction",
			Details: err.Error(),
			Code:    "INVALID_TX",
		})
		return
	}

	res, err := s.RelayTx(txBytes)
	if err != nil {
		fmt.Printf("Tx relay failed for user %s: %v\n", username, err)
		s.auditLogger.LogTransaction(userID, "", "broadcast", 0, "error", err.Error())
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "Failed to broadcast transaction",
			Details: err.Error(),
			Code:    "BROADCAST_FAILED",
		})
		return
	}

	status := "success"
	if res.Code != 0 {
		status = "rejected"
	}
	s.auditLogger.LogTransaction(userID, res.TxHash, "broadcast", res.Height, status,
		fmt.Sprintf("code=%d", res.Code))

	if res.Code == 0 {
		s.wsHub.BroadcastToChannel("txs", BroadcastTxResponse{
			TxHash: res.TxHash,
			Code:   res.Code,
			Height: res.Height,
		})
	}

	c.JSON(http.StatusOK, BroadcastTxResponse{
		TxHash:    res.TxHash,
		Code:      res.Code,
		RawLog:    res.RawLog,
		Height:    res.Height,
		GasWanted: res.GasWanted,
		GasUsed:   res.GasUsed,
	})
}

// handleGetTx looks up a confirmed transaction by hash
func (s *Server) handleGetTx(c *gin.Context) {
	hash := strings.TrimPrefix(strings.TrimSpace(c.Param("hash")), "0x")
	if err := ValidateTxHash(hash); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid transaction hash",
			Details: err.Error(),
			Code:    "INVALID_HASH",
		})
		return
	}

	hashBytes, err := hex.DecodeString(hash)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid transaction hash",
			Code:  "INVALID_HASH",
		})
		return
	}

	node, err := s.clientCtx.GetNode()
	if err != nil {
		chainError(c, err)
		return
	}

	res, err := node.Tx(c.Request.Context(), hashBytes, false)
	if err != nil {
		chainError(c, err)
		return
	}

	resp := TxStatusResponse{
		TxHash:    res.Hash.String(),
		Code:      res.TxResult.Code,
		Height:    res.Height,
		GasWanted: res.TxResult.GasWanted,
		GasUsed:   res.TxResult.GasUsed,
		RawLog:    res.TxResult.Log,
	}

	// Block time is best effort; the lookup already succeeded
	if block, err := node.Block(c.Request.Context(), &res.Height); err == nil {
		resp.Timestamp = block.Block.Time.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	c.JSON(http.StatusOK, resp)
}
