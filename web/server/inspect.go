package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	SphereIndex  int                    `json:"sphereIndex"`
	MaterialType string                 `json:"materialType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"` // Pixel value the renderer would write
	Properties   map[string]interface{} `json:"properties"`
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// materialType names the surface model of a sphere
func materialType(sphere *geometry.Sphere) string {
	if sphere.Diffuse {
		return "diffuse"
	}
	return "mirror"
}

// inspectPixel casts the primary ray of pixel (x, y) and describes the first sphere hit
func inspectPixel(sceneObj *scene.Scene, x, y int) (InspectResponse, error) {
	ray, err := sceneObj.Camera.GetRay(y, x)
	if err != nil {
		return InspectResponse{}, err
	}

	t, index := sceneObj.Intersect(ray)
	if index == scene.NoSphere {
		return InspectResponse{Hit: false, SphereIndex: scene.NoSphere}, nil
	}

	sphere := &sceneObj.Spheres()[index]
	point := ray.At(t)
	normal, err := sphere.Normal(point)
	if err != nil {
		return InspectResponse{}, err
	}

	color, err := sceneObj.GetColor(ray, sceneObj.RenderConfig.MaxDepth)
	if err != nil {
		return InspectResponse{}, err
	}

	return InspectResponse{
		Hit:          true,
		SphereIndex:  index,
		MaterialType: materialType(sphere),
		Point:        toArray(point),
		Normal:       toArray(normal),
		Distance:     t,
		Color:        toArray(color),
		Properties: map[string]interface{}{
			"center": toArray(sphere.Center),
			"radius": sphere.Radius,
			"albedo": toArray(sphere.Albedo),
		},
	}, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	query := r.URL.Query()
	pixelX, err := parseIntParam(query, "x", -1, 0, inspectReq.Width-1)
	if err != nil || pixelX < 0 {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := parseIntParam(query, "y", -1, 0, inspectReq.Height-1)
	if err != nil || pixelY < 0 {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := inspectPixel(sceneObj, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("inspect failed: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, response)
}
