package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-sphere-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory of JSON scene files")
	staticDir := flag.String("static", "static", "Directory of static front end files")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port, *scenesDir, *staticDir)

	log.Printf("Sphere Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
