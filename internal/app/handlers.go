package app

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/voxellogic/circuitsim/circuit"
)

var badRequestErrorMsg = "Bad Request - please contact the administrator"
var internalServerErrorMsg = "Internal Server Error - please contact the administrator"

// kindRequest is the wire representation of a circuit.ComponentKind.
// Name is one of "not", "and", "half_adder", "full_adder", "delay". N is
// only meaningful (and required) for "and".
type kindRequest struct {
	Name string `json:"kind"`
	N    int    `json:"n"`
}

func (k kindRequest) toKind() (circuit.ComponentKind, error) {
	switch k.Name {
	case "not":
		return circuit.Not(), nil
	case "and":
		if k.N < 1 {
			return circuit.ComponentKind{}, errInvalidKind("and requires n >= 1")
		}
		return circuit.And(k.N), nil
	case "half_adder":
		return circuit.HalfAdder(), nil
	case "full_adder":
		return circuit.FullAdder(), nil
	case "delay":
		return circuit.Delay(), nil
	default:
		return circuit.ComponentKind{}, errInvalidKind("unknown kind: " + k.Name)
	}
}

type errInvalidKind string

func (e errInvalidKind) Error() string { return string(e) }

func kindName(k circuit.ComponentKind) string {
	switch {
	case k.IsDelay():
		return "delay"
	default:
		return k.String()
	}
}

type componentView struct {
	ID      circuit.ComponentId `json:"id"`
	Kind    string              `json:"kind"`
	Values  []bool              `json:"values"`
	Version uint64              `json:"version"`
}

// HealthHandler reports process liveness.
func (a *appServer) HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// CreateComponent handles POST /api/components.
func (a *appServer) CreateComponent(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}

	var req kindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Error().Err(err).Msg("binding JSON failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": badRequestErrorMsg})
		return
	}

	kind, err := req.toKind()
	if err != nil {
		l.Error().Err(err).Msg("invalid component kind")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.mu.Lock()
	id := a.engine.Add(kind)
	a.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListComponents handles GET /api/components.
func (a *appServer) ListComponents(c *gin.Context) {
	a.mu.Lock()
	snap := a.engine.Components()
	a.mu.Unlock()

	views := make([]componentView, 0, len(snap))
	for _, v := range snap {
		views = append(views, componentView{ID: v.Id, Kind: kindName(v.Kind), Values: v.Values, Version: v.Version})
	}
	c.JSON(http.StatusOK, views)
}

// GetComponent handles GET /api/components/:id.
func (a *appServer) GetComponent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	a.mu.Lock()
	snap := a.engine.Components()
	a.mu.Unlock()

	for _, v := range snap {
		if uint64(v.Id) == id {
			c.JSON(http.StatusOK, componentView{ID: v.Id, Kind: kindName(v.Kind), Values: v.Values, Version: v.Version})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "unknown component"})
}

type wireRequest struct {
	Parent       uint64 `json:"parent"`
	Child        uint64 `json:"child"`
	ParentOutput int    `json:"parent_output"`
	ChildInput   int    `json:"child_input"`
}

// CreateWire handles POST /api/wire.
func (a *appServer) CreateWire(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}

	var req wireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Error().Err(err).Msg("binding JSON failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": badRequestErrorMsg})
		return
	}

	a.mu.Lock()
	created, err := a.engine.Wire(circuit.ComponentId(req.Parent), circuit.ComponentId(req.Child), req.ParentOutput, req.ChildInput)
	a.mu.Unlock()

	if err != nil {
		switch err.(type) {
		case *circuit.ErrCycleDetected:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// Step handles POST /api/step.
func (a *appServer) Step(c *gin.Context) {
	a.mu.Lock()
	a.engine.Step()
	tick := a.engine.CurrentTick()
	a.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"tick": tick})
}
