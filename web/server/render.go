package server

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene ID, e.g. "default" or "json:my-scene"
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Workers int    `json:"workers"` // Worker count, 0 = auto-detect
}

// handleRender renders a scene and responds with the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	consoleChan := make(chan ConsoleMessage, defaultConsoleSize)
	logger := NewWebLogger(renderID, consoleChan)

	stats, err := sceneObj.Render(logger)
	close(consoleChan)
	s.console.Drain(consoleChan)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	// Encode fully before writing headers so encode errors still get a 500
	var buf bytes.Buffer
	camera := sceneObj.Camera
	if err := loaders.EncodePNG(&buf, camera.Image, camera.Width, camera.Height, renderer.Channels, camera.Stride()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Lit-Pixels", strconv.Itoa(stats.LitPixels))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing image: %v", err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 256, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 256, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 1024*1024 {
		log.Printf("Render warning: %dx%d image may render slowly", req.Width, req.Height)
	}

	return req, nil
}
