package main

import (
	"log"
	"os"
	"runtime/debug"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()
	cli.Execute()
}
