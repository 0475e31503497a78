package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Answer
		wantErr bool
	}{
		{name: "upper case", in: "A", want: AnswerA},
		{name: "lower case", in: "c", want: AnswerC},
		{name: "padded", in: " e ", want: AnswerE},
		{name: "out of range", in: "F", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "word", in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnswer(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAnswer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusReady.Valid())
	assert.True(t, StatusFailed.Valid())
	assert.False(t, Status("done").Valid())
	assert.False(t, Status("").Valid())
}

func TestQuestionAnswered(t *testing.T) {
	q := Question{ID: "q1", URI: "file:///a.jpg", Status: StatusPending}
	assert.False(t, q.Answered())

	q.Answer = AnswerB
	assert.True(t, q.Answered())
}
