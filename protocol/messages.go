package protocol

import (
	"errors"

	"github.com/minaorangina/klondike/game"
)

var (
	ErrMissingCardID = errors.New("select_card needs a card_id")
	ErrMissingPileID = errors.New("select_pile needs a pile_id")
)

// InboundMessage is a gesture sent by an adapter.
// The ids are pointers so that a missing id is not read as card or pile 0.
type InboundMessage struct {
	Command Cmd          `json:"command"`
	CardID  *game.CardID `json:"card_id,omitempty"`
	PileID  *game.PileID `json:"pile_id,omitempty"`
}

func SelectCardMessage(id game.CardID) InboundMessage {
	return InboundMessage{Command: SelectCard, CardID: &id}
}

func SelectPileMessage(id game.PileID) InboundMessage {
	return InboundMessage{Command: SelectPile, PileID: &id}
}

// Validate checks that the message carries the id its command needs
func (m InboundMessage) Validate() error {
	switch m.Command {
	case SelectCard:
		if m.CardID == nil {
			return ErrMissingCardID
		}
	case SelectPile:
		if m.PileID == nil {
			return ErrMissingPileID
		}
	}
	return nil
}

// OutboundMessage tells an adapter the game changed
type OutboundMessage struct {
	Command Cmd            `json:"command"`
	GameID  string         `json:"game_id"`
	Outcome string         `json:"outcome,omitempty"`
	State   *game.Snapshot `json:"state,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// RenderMessage wraps a snapshot for the wire
func RenderMessage(gameID string, outcome string, snap game.Snapshot) OutboundMessage {
	return OutboundMessage{
		Command: Render,
		GameID:  gameID,
		Outcome: outcome,
		State:   &snap,
	}
}

func ErrorMessage(gameID string, err error) OutboundMessage {
	return OutboundMessage{
		Command: Error,
		GameID:  gameID,
		Error:   err.Error(),
	}
}
