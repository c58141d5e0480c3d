package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bft-labs/brayton/pkg/cycle"
	"github.com/bft-labs/brayton/pkg/diagram"
	"github.com/bft-labs/brayton/pkg/log"
)

// maxBodyBytes bounds request bodies; a cycle request is a handful of numbers.
const maxBodyBytes = 64 << 10

// SolveCycle solves a Brayton cycle
// @Summary Solve a cycle
// @Description Solve an ideal-gas Brayton cycle. Inputs are in form units (kPa, K, MW); regen may be a number, "none" or null.
// @Tags cycles
// @Accept json
// @Produce json
// @Param cycle body CycleRequest true "Cycle inputs"
// @Success 200 {object} cycle.Result "Solved cycle"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Router /cycles [post]
func (s *Server) SolveCycle(w http.ResponseWriter, r *http.Request) {
	res, ok := s.decodeAndSolve(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// RenderDiagram renders a cycle diagram
// @Summary Render a cycle diagram
// @Description Solve a cycle and render its P-v or T-s diagram as SVG.
// @Tags diagrams
// @Accept json
// @Produce image/svg+xml
// @Param kind path string true "Diagram kind" Enums(pv, ts)
// @Param cycle body CycleRequest true "Cycle inputs"
// @Success 200 {string} string "SVG document"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Unknown diagram kind"
// @Router /diagrams/{kind} [post]
func (s *Server) RenderDiagram(w http.ResponseWriter, r *http.Request) {
	kind, ok := diagram.ParseKind(r.PathValue("kind"))
	if !ok {
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "unknown diagram kind " + r.PathValue("kind")})
		return
	}
	res, ok := s.decodeAndSolve(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := diagram.Build(kind, res).WriteSVG(&buf); err != nil {
		s.logger.Error("render diagram", log.Err(err))
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to render diagram"})
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// DefaultGas returns the server's gas properties
// @Summary Default gas properties
// @Description Gas properties used when a request does not override them.
// @Tags gas
// @Produce json
// @Success 200 {object} cycle.Gas "Gas properties"
// @Router /gas [get]
func (s *Server) DefaultGas(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.opts.gas)
}

// Health reports liveness and the solver version.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "solver": cycle.Version})
}

// decodeAndSolve writes the error response itself and reports false when the
// request cannot be solved.
func (s *Server) decodeAndSolve(w http.ResponseWriter, r *http.Request) (cycle.Result, bool) {
	var req CycleRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON payload: " + err.Error()})
		return cycle.Result{}, false
	}

	res, err := req.solve(s.opts.gas)
	if err != nil {
		var iie *cycle.InvalidInputError
		if errors.As(err, &iie) {
			s.logger.Debug("invalid input", log.String("field", iie.Field), log.Any("request", req))
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: iie.Error(), Field: iie.Field})
			return cycle.Result{}, false
		}
		s.logger.Error("solve cycle", log.Err(err))
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return cycle.Result{}, false
	}
	s.logger.Debug("cycle solved",
		log.Float64("efficiency", res.Efficiency),
		log.Float64("mass_flow", res.MassFlow),
		log.Bool("regenerator", res.HasRegenerator()),
	)
	return res, true
}

// writeJSON encodes v before committing the status, so an encoding failure
// still reaches the client as a 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.logger.Error("encode response", log.Err(err), log.Int("status", status))
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(ErrorResponse{Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
