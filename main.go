package main

import (
	"leapfrog/driver"
	"os"
)

func main() {
	os.Exit(driver.Main(os.Args[1:], os.Stdout, os.Stderr))
}
