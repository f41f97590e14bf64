package http

import (
	"air-cargo-assistant/internal/conversation"
	"air-cargo-assistant/internal/model"
)

type converseReq struct {
	Message             string                     `json:"message" binding:"required"`
	History             []turnMessage              `json:"conversation_history"`
	PendingConfirmation *model.PendingConfirmation `json:"pending_confirmation"`
	AccumulatedSlots    model.Slots                `json:"accumulated_slots"`
}

type turnMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (req converseReq) toInput() conversation.ConverseInput {
	history := make([]model.TurnMessage, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, model.TurnMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}

	return conversation.ConverseInput{
		Message:             req.Message,
		History:             history,
		PendingConfirmation: req.PendingConfirmation,
		AccumulatedSlots:    req.AccumulatedSlots,
	}
}

type converseResp struct {
	Response          string                     `json:"response"`
	Intent            string                     `json:"intent"`
	NeedsConfirmation bool                       `json:"needs_confirmation"`
	ConfirmationData  *model.PendingConfirmation `json:"confirmation_data,omitempty"`
	Data              map[string]any             `json:"data,omitempty"`
	AccumulatedSlots  model.Slots                `json:"accumulated_slots"`
}

func (h *handler) newConverseResp(output conversation.ConverseOutput) converseResp {
	return converseResp{
		Response:          output.Response,
		Intent:            string(output.Intent),
		NeedsConfirmation: output.NeedsConfirmation,
		ConfirmationData:  output.ConfirmationData,
		Data:              output.Data,
		AccumulatedSlots:  output.AccumulatedSlots,
	}
}
