package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"tally/internal/core"
)

type recordRequest struct {
	TenantID string `json:"tenantId"`
	core.TransactionInput
}

type recordResponse struct {
	Success bool             `json:"success"`
	Data    core.Transaction `json:"data"`
	Message string           `json:"message"`
}

type listResponse struct {
	Success bool               `json:"success"`
	Data    []core.Transaction `json:"data"`
	Count   int                `json:"count"`
}

type summaryResponse struct {
	Success bool                  `json:"success"`
	Data    core.FinancialSummary `json:"data"`
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleRecordTransaction(w, r)
	case http.MethodGet:
		s.handleListTransactions(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized: Missing or invalid authorization header")
		return
	}

	actor, err := s.resolver.Resolve(r.Context(), token)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request: invalid JSON body")
		return
	}

	if strings.TrimSpace(req.TenantID) == "" {
		writeError(w, http.StatusBadRequest, "Bad Request: tenantId is required")
		return
	}

	tx, err := s.service.RecordTransaction(r.Context(), actor, req.TenantID, req.TransactionInput)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordResponse{
		Success: true,
		Data:    tx,
		Message: "Transaction created successfully",
	})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	actor, tenantID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	txs, err := s.service.ListTransactions(r.Context(), actor, tenantID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if txs == nil {
		txs = []core.Transaction{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Data:    txs,
		Count:   len(txs),
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	actor, tenantID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	summary, err := s.service.Summarize(r.Context(), actor, tenantID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Success: true,
		Data:    summary,
	})
}

// authenticate resolves the bearer token and pulls the tenantId query
// parameter; it writes the error response itself when either is unusable.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (core.Actor, string, bool) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized: Missing or invalid authorization header")
		return core.Actor{}, "", false
	}

	actor, err := s.resolver.Resolve(r.Context(), token)
	if err != nil {
		writeDomainError(w, r, err)
		return core.Actor{}, "", false
	}

	tenantID := strings.TrimSpace(r.URL.Query().Get("tenantId"))
	if tenantID == "" {
		writeError(w, http.StatusBadRequest, "Bad Request: tenantId query parameter is required")
		return core.Actor{}, "", false
	}

	return actor, tenantID, true
}
