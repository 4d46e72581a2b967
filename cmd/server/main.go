package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/contrib/static"
	"github.com/joho/godotenv"

	"github.com/mktrading/backoffice/server"
)

func main() {
	godotenv.Load()

	keySecret := os.Getenv("SERVERKEY")
	port := os.Getenv("SERVERPORT")
	if len(keySecret) < 2 || len(port) < 4 {
		fmt.Println("ERROR: Environment variable SERVERKEY or SERVERPORT is not defined")
		os.Exit(1)
	}
	dbfile := os.Getenv("DBFILE")
	if dbfile == "" {
		dbfile = "./backoffice.db3"
	}

	db, err := server.OpenDB(dbfile)
	if err != nil {
		fmt.Println("ERROR:", err)
		os.Exit(1)
	}
	defer db.Close()

	if user := os.Getenv("ADMINUSER"); user != "" {
		if err := server.SeedUser(db, user, os.Getenv("ADMINPASS")); err != nil {
			fmt.Println("ERROR:", err)
			os.Exit(1)
		}
	}

	router := server.Setup(db, keySecret)
	router.Use(static.Serve("/", static.LocalFile("./static", true)))

	router.Run("0.0.0.0:" + port)
}
