package api

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// API version 1
	api := s.router.Group("/api")
	{
		// Authentication routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.handleRegister)
			auth.POST("/login", s.handleLogin)

			// Protected routes
			authProtected := auth.Group("")
			authProtected.Use(s.AuthMiddleware())
			{
				authProtected.GET("/profile", s.handleGetProfile)
				authProtected.POST("/link-address", s.handleLinkAddress)
			}
		}

		// Compute resource routes (public)
		resources := api.Group("/resources")
		{
			resources.GET("", s.handleListResources)
			resources.GET("/:resource_id", s.handleGetResource)
		}

		// Auction routes (public)
		auctions := api.Group("/auctions")
		{
			auctions.GET("", s.handleListAuctions)
			auctions.GET("/:auction_id", s.handleGetAuction)
			auctions.GET("/:auction_id/active", s.handleGetAuctionActive)
		}

		// Job routes (public)
		jobs := api.Group("/jobs")
		{
			jobs.GET("", s.handleListJobs)
			jobs.GET("/:job_id", s.handleGetJob)
			jobs.GET("/:job_id/escrow", s.handleGetJobEscrow)
		}

		// Provider reputation routes (public)
		reputation := api.Group("/reputation")
		{
			reputation.GET("/:address", s.handleGetReputation)
		}

		// Ledger balance routes (public)
		ledger := api.Group("/ledger")
		{
			ledger.GET("/:address", s.handleGetBalance)
		}

		// Market data routes (public)
		market := api.Group("/market")
		{
			market.GET("/params", s.handleGetParams)
			market.GET("/stats", s.handleGetMarketStats)
			market.GET("/treasury", s.handleGetTreasury)
		}

		// Transaction relay routes
		tx := api.Group("/tx")
		{
			tx.GET("/:hash", s.handleGetTx)

			// Protected routes
			txProtected := tx.Group("")
			txProtected.Use(s.AuthMiddleware())
			{
				txProtected.POST("/broadcast", s.handleBroadcastTx)
			}
		}
	}

	// WebSocket endpoint
	s.router.GET("/ws", s.handleWebSocket)
}
