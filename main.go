package main

import "bodylover-backend/cmd"

// @title BodyLover API
// @version 1.0
// @description Accounts, health records, activity plans with point rewards and family progress.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cmd.Execute()
}
