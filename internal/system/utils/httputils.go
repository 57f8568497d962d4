package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

// Envelope is the JSON body shape shared by every API response.
type Envelope struct {
	Success bool                    `json:"success"`
	Data    interface{}             `json:"data,omitempty"`
	Error   *apierrors.ErrorMessage `json:"error,omitempty"`
}

// WriteSuccess writes a success envelope with the given status code.
func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Envelope{Success: true, Data: data})
}

// HandleError maps a typed error onto the failure envelope. Client errors keep
// their status code and description; everything else surfaces as a 500 without
// leaking the cause.
func HandleError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var clientError *apierrors.ClientError
	if errors.As(err, &clientError) {
		statusCode := clientError.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(Envelope{Success: false, Error: &clientError.ErrorMessage})
		return
	}

	var serverError *apierrors.ServerError
	if errors.As(err, &serverError) {
		log.GetLogger().Error("Request failed with server error", log.Error(serverError))
		w.WriteHeader(http.StatusInternalServerError)
		msg := serverError.ErrorMessage
		msg.Description = ""
		_ = json.NewEncoder(w).Encode(Envelope{Success: false, Error: &msg})
		return
	}

	log.GetLogger().Error("Request failed with unexpected error", log.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(Envelope{Success: false, Error: &apierrors.ErrorMessage{
		Code:    "RDS-15000",
		Message: "Internal server error.",
	}})
}
