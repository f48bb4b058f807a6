package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"

	"mazeforge/internal/maze"
	"mazeforge/internal/web"
)

func main() {
	def := maze.DefaultConfig()
	preset := flag.String("preset", maze.DefaultPreset, "maze geometry preset")
	width := flag.Int("w", def.Width, "requested maze width in cells")
	height := flag.Int("h", def.Height, "requested maze height in cells")
	seed := flag.Int64("seed", def.Seed, "seed of the first maze")
	flag.Parse()

	overrides := map[string]string{
		"w":    strconv.Itoa(*width),
		"h":    strconv.Itoa(*height),
		"seed": strconv.FormatInt(*seed, 10),
	}
	srv, err := web.NewServer(*preset, overrides, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, srv.Handler()))
}
