package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Request limits shared by the render and inspect endpoints
const (
	minDimension = 1
	maxDimension = 2000
	maxWorkers   = 64
)

// Server handles web requests for the sphere raytracer
type Server struct {
	port      int
	scenesDir string
	staticDir string
	console   *Console
	renders   atomic.Int64
}

// NewServer creates a new web server serving JSON scenes from scenesDir and
// the browser front end from staticDir
func NewServer(port int, scenesDir, staticDir string) *Server {
	return &Server{
		port:      port,
		scenesDir: scenesDir,
		staticDir: staticDir,
		console:   NewConsole(defaultConsoleSize),
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in and JSON scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleSceneConfig returns the full description of a scene with the
// request limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	cfg, err := scene.LoadSceneConfig(sceneName, s.scenesDir)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := map[string]interface{}{
		"scene":  sceneName,
		"config": cfg,
		"limits": map[string]interface{}{
			"width":   map[string]int{"min": minDimension, "max": maxDimension},
			"height":  map[string]int{"min": minDimension, "max": maxDimension},
			"workers": map[string]int{"min": 0, "max": maxWorkers},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// handleConsole returns the most recent render log lines
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.console.Messages())
}

// createScene resolves a scene and sizes it for the request
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.CreateScene(req.Scene, s.scenesDir)
	if err != nil {
		return nil, err
	}
	sceneObj.SetResolution(req.Width, req.Height)
	if req.Workers > 0 {
		sceneObj.RenderConfig.NumWorkers = req.Workers
	}
	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
