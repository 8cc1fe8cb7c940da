package handler

import (
	"context"
	"net/http"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/logger"
	"github.com/osse101/wheelbet/internal/utils"
)

// StateResponse is the JSON view of the running session
type StateResponse struct {
	SessionID    string           `json:"session_id"`
	Balance      int64            `json:"balance"`
	BalanceText  string           `json:"balance_text"`
	Spinning     bool             `json:"spinning"`
	Ended        bool             `json:"ended"`
	Reason       domain.EndReason `json:"reason,omitempty"`
	Rounds       int              `json:"rounds"`
	AngleOffset  float64          `json:"angle_offset"`
	ElapsedTicks int              `json:"elapsed_ticks"`
	TotalTicks   int              `json:"total_ticks"`
	Pointer      domain.Segment   `json:"pointer"`
}

// HandleGetState returns the current session snapshot
func HandleGetState(reader SnapshotReader, currency string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), SnapshotTimeout)
		defer cancel()

		snap, err := reader.Snapshot(ctx)
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgSnapshotFailed, "error", err)
			respondError(w, http.StatusServiceUnavailable, ErrMsgSnapshotFailed)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{
			SessionID:    snap.State.ID,
			Balance:      snap.State.Balance,
			BalanceText:  utils.FormatAmount(snap.State.Balance, currency),
			Spinning:     snap.State.Spinning,
			Ended:        snap.State.Ended,
			Reason:       snap.State.Reason,
			Rounds:       snap.State.Rounds,
			AngleOffset:  snap.Spin.AngleOffset,
			ElapsedTicks: snap.Spin.ElapsedTicks,
			TotalTicks:   snap.Spin.TotalTicks,
			Pointer:      snap.Pointer,
		})
	}
}
