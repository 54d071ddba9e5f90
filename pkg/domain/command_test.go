package domain_test

import (
	"testing"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fundingButtons = []domain.Action{
	domain.ValueButton("Self-funded", "self-funded", domain.StatePlanning),
	domain.ValueButton("Business Loan", "loan", domain.StatePlanning),
}

var goalInput = []domain.Action{
	domain.TextInput(domain.AnswerGoal, "", domain.StateAskTimeline),
}

func TestCommand_Resolve(t *testing.T) {
	ev, err := domain.Command{Type: domain.CommandButton, Index: 2}.Resolve(fundingButtons)
	require.NoError(t, err)
	assert.Equal(t, "loan", ev.(domain.ButtonPressed).Value)

	_, err = domain.Command{Type: domain.CommandButton, Index: 3}.Resolve(fundingButtons)
	assert.ErrorIs(t, err, domain.ErrNoAction)

	ev, err = domain.Command{Type: domain.CommandInput, Value: "hire 2 staff"}.Resolve(goalInput)
	require.NoError(t, err)
	assert.Equal(t, domain.InputSubmitted{Key: domain.AnswerGoal, Raw: "hire 2 staff"}, ev)

	_, err = domain.Command{Type: domain.CommandInput, Value: "x"}.Resolve(fundingButtons)
	assert.ErrorIs(t, err, domain.ErrNoAction)

	_, err = domain.Command{Type: "swipe"}.Resolve(fundingButtons)
	assert.ErrorIs(t, err, domain.ErrNoAction)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		pending []domain.Action
		line    string
		want    domain.Event
		wantErr bool
	}{
		{"by number", fundingButtons, "1", fundingButtons[0].Press(), false},
		{"by label", fundingButtons, " business loan ", fundingButtons[1].Press(), false},
		{"out of range", fundingButtons, "9", nil, true},
		{"unknown label", fundingButtons, "grant", nil, true},
		{"input keeps raw text", goalInput, " hire 2 ", domain.InputSubmitted{Key: domain.AnswerGoal, Raw: " hire 2 "}, false},
		{"number goes to input", goalInput, "6", domain.InputSubmitted{Key: domain.AnswerGoal, Raw: "6"}, false},
		{"empty goes to input", goalInput, "", domain.InputSubmitted{Key: domain.AnswerGoal, Raw: ""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseCommand(tt.pending, tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNoAction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
