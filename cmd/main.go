package main

import (
	"github.com/RamonPessoaDev/meal-tracker/config"
	"github.com/RamonPessoaDev/meal-tracker/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(config.ServerAddr())
}
