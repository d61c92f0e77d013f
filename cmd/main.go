package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mkarimi21/seabattle-backend/api"
	"github.com/mkarimi21/seabattle-backend/db"
	"github.com/mkarimi21/seabattle-backend/db/sqlc"
	mb "github.com/mkarimi21/seabattle-backend/models/battleship"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		panic(err)
	}

	retention := mb.DefaultGameRetention
	if retentionMin := os.Getenv("GAME_RETENTION_MIN"); retentionMin != "" {
		minutes, err := strconv.Atoi(retentionMin)
		if err != nil {
			panic(err)
		}
		retention = time.Duration(minutes) * time.Minute
	}

	// Analytics are optional, the game server runs fine without a db.
	var querier sqlc.Querier
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		psqlDb := db.MustConnectToDb(psqlUrl)
		defer psqlDb.Close()
		querier = sqlc.New(psqlDb)
	}

	gameManager := mb.NewBattleshipGameManager(retention)
	go gameManager.CleanupPeriodically()

	rp := api.NewRequestProcessor(gameManager, querier)

	mux := http.NewServeMux()
	rp.RegisterRoutes(mux)

	log.Printf("Listening to port %d\n", port)
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+fmt.Sprintf("%d", port), mux))
}
