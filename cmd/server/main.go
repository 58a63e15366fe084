package main

import (
	_ "trialboard/docs"
	"trialboard/internal/cli"
)

// @title           Trial Board API
// @version         1.0
// @description     Kanban board and timeline for clinical-trial tasks.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cli.Execute()
}
