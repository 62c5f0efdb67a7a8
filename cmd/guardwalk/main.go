// cmd/guardwalk/main.go
package main

import (
	"guardwalk/internal/app"
	"guardwalk/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
