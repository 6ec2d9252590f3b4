package main

import "github.com/WilliamWisten/DatabasteknikInl-mning/internal/cmd"

func main() {
	cmd.Execute()
}
