package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/camppp/Fetch-BE-Take-Home/internal/receipt"
)

// ReceiptAPI - HTTP adapter for the receipt scoring endpoints. It decodes
// request bodies, delegates to the core validator/scorer/store, and maps core
// errors onto response codes.
type ReceiptAPI struct {
	repo receipt.PointsRepository
	ids  receipt.IDGenerator
	log  zerolog.Logger
}

// NewReceiptAPI - default instance of ReceiptAPI
func NewReceiptAPI(repo receipt.PointsRepository, ids receipt.IDGenerator, log zerolog.Logger) *ReceiptAPI {
	return &ReceiptAPI{
		repo: repo,
		ids:  ids,
		log:  log,
	}
}

// InitializeRoutes defines the routes for the receipts
func (api *ReceiptAPI) InitializeRoutes(mux *mux.Router) {
	mux.HandleFunc("/receipts/process", api.processReceipt)
	mux.HandleFunc("/receipts/{id}/points", api.getPointsByID)
}

// processReceipt REST endpoint POST /receipts/process
// validates and scores a submitted receipt, stores the score under a fresh
// id, and returns the id
func (api *ReceiptAPI) processReceipt(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, http.MethodPost) {
		return
	}

	// Decode into a generic document rather than the Receipt struct: the
	// validator checks JSON shape (missing fields, wrong types) itself, and
	// struct decoding would mask exactly the inputs it must reject.
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Json in Body")
		return
	}

	rec, err := receipt.Validate(doc)
	if err != nil {
		api.log.Debug().Str("reason", err.Error()).Msg("receipt rejected")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	points := receipt.Score(rec)
	id := api.ids.Next()

	if err := api.repo.Save(id, points); err != nil {
		api.log.Error().Err(err).Str("id", id).Msg("failed to store receipt score")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// getPointsByID REST endpoint GET /receipts/{id}/points
// returns the stored points for the receipt id in the path
func (api *ReceiptAPI) getPointsByID(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, http.MethodGet) {
		return
	}

	receiptID := mux.Vars(r)["id"]

	points, err := api.repo.Points(receiptID)
	if errors.Is(err, receipt.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("ERROR: receipt id not found (%s)", receiptID))
		return
	}
	if err != nil {
		api.log.Error().Err(err).Str("id", receiptID).Msg("failed to read receipt score")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"points": points})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
