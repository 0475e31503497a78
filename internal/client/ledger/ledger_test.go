package ledger

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testly/internal/client/models"
)

func ready() *models.Status   { s := models.StatusReady; return &s }
func failed() *models.Status  { s := models.StatusFailed; return &s }
func answer(a models.Answer) *models.Answer { return &a }
func str(s string) *string    { return &s }

func TestQuestions_UnknownFolderIsEmpty(t *testing.T) {
	l := New()

	got := l.Questions("Matematik")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRegisterExisting_DefaultsStatusToPending(t *testing.T) {
	l := New()

	l.RegisterExisting("Fizik", models.Question{ID: "q1", URI: "file:///a.jpg"})

	qs := l.Questions("Fizik")
	require.Len(t, qs, 1)
	assert.Equal(t, models.StatusPending, qs[0].Status)
}

func TestRegisterExisting_DuplicateIDIsIgnored(t *testing.T) {
	l := New()

	l.RegisterExisting("Fizik", models.Question{ID: "q1", URI: "file:///a.jpg"})
	l.RegisterExisting("Fizik", models.Question{ID: "q1", URI: "file:///other.jpg"})

	qs := l.Questions("Fizik")
	require.Len(t, qs, 1)
	assert.Equal(t, "file:///a.jpg", qs[0].URI)
}

func TestRegisterFromCapture_ReadyWithFreshID(t *testing.T) {
	l := New()

	q1 := l.RegisterFromCapture("Kimya", "file:///a.jpg", models.AnswerA)
	q2 := l.RegisterFromCapture("Kimya", "file:///b.jpg", models.AnswerNone)

	assert.NotEmpty(t, q1.ID)
	assert.NotEqual(t, q1.ID, q2.ID)
	assert.Equal(t, models.StatusReady, q1.Status)
	assert.Equal(t, models.AnswerA, q1.Answer)
	assert.False(t, q2.Answered())

	qs := l.Questions("Kimya")
	require.Len(t, qs, 2)
	assert.Equal(t, []string{q1.ID, q2.ID}, []string{qs[0].ID, qs[1].ID}, "insertion order preserved")
}

func TestUpdate_MergesOnlySpecifiedFields(t *testing.T) {
	l := New()
	l.RegisterExisting("Fizik", models.Question{ID: "q1", URI: "file:///local.jpg", Status: models.StatusPending})

	// The user answers while processing is still in flight.
	require.True(t, l.Update("Fizik", "q1", Patch{Answer: answer(models.AnswerD)}))

	// Reconciliation arrives later and must not clobber the answer.
	require.True(t, l.Update("Fizik", "q1", Patch{URI: str("https://x/p1.jpg"), Status: ready()}))

	qs := l.Questions("Fizik")
	require.Len(t, qs, 1)
	assert.Equal(t, "https://x/p1.jpg", qs[0].URI)
	assert.Equal(t, models.StatusReady, qs[0].Status)
	assert.Equal(t, models.AnswerD, qs[0].Answer)
}

func TestUpdate_Idempotent(t *testing.T) {
	l := New()
	l.RegisterExisting("Fizik", models.Question{ID: "q1", URI: "file:///local.jpg"})

	patch := Patch{URI: str("https://x/p1.jpg"), Status: ready()}
	require.True(t, l.Update("Fizik", "q1", patch))
	once := l.Questions("Fizik")

	require.True(t, l.Update("Fizik", "q1", patch))
	twice := l.Questions("Fizik")

	assert.Equal(t, once, twice)
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	l := New()
	l.RegisterExisting("Math", models.Question{ID: "q1", URI: "file:///a.jpg"})
	before := l.Questions("Math")

	assert.False(t, l.Update("Math", "nonexistent", Patch{Status: ready()}))
	assert.False(t, l.Update("NoSuchFolder", "q1", Patch{Status: ready()}))

	assert.Equal(t, before, l.Questions("Math"))
}

func TestUpdate_TwoRecordsNoCrossContamination(t *testing.T) {
	l := New()
	l.RegisterExisting("Kimya", models.Question{ID: "id1", URI: "file:///1.jpg"})
	l.RegisterExisting("Kimya", models.Question{ID: "id2", URI: "file:///2.jpg"})

	// B resolves before A.
	require.True(t, l.UpdateURI("Kimya", "id2", "https://x/p2.png"))
	require.True(t, l.UpdateURI("Kimya", "id1", "https://x/p1.png"))

	qs := l.Questions("Kimya")
	require.Len(t, qs, 2)
	assert.Equal(t, "id1", qs[0].ID, "resolution order must not reorder records")
	assert.Equal(t, "https://x/p1.png", qs[0].URI)
	assert.Equal(t, "id2", qs[1].ID)
	assert.Equal(t, "https://x/p2.png", qs[1].URI)
	for _, q := range qs {
		assert.Equal(t, models.StatusReady, q.Status)
	}
}

func TestUpdate_SameIDLaterArrivalWinsPerField(t *testing.T) {
	l := New()
	l.RegisterExisting("Fizik", models.Question{ID: "q1", URI: "file:///a.jpg"})

	require.True(t, l.Update("Fizik", "q1", Patch{Status: failed()}))
	require.True(t, l.Update("Fizik", "q1", Patch{Status: ready(), URI: str("https://x/p.png")}))

	qs := l.Questions("Fizik")
	assert.Equal(t, models.StatusReady, qs[0].Status)
	assert.Equal(t, "https://x/p.png", qs[0].URI)
}

func TestLedger_ConcurrentReconciliationsDoNotLoseWrites(t *testing.T) {
	l := New()

	const n = 64
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("id%02d", i)
		l.RegisterExisting("Tarih", models.Question{ID: ids[i], URI: fmt.Sprintf("file:///%02d.jpg", i)})
	}

	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.UpdateURI("Tarih", ids[i], fmt.Sprintf("https://x/p%02d.png", i))
		}(i)
	}
	wg.Wait()

	qs := l.Questions("Tarih")
	require.Len(t, qs, n)
	for i, q := range qs {
		assert.Equal(t, ids[i], q.ID, "insertion order preserved")
		assert.Equal(t, fmt.Sprintf("https://x/p%02d.png", i), q.URI)
		assert.Equal(t, models.StatusReady, q.Status)
	}
}

func TestFind(t *testing.T) {
	l := New()
	l.RegisterExisting("Fizik", models.Question{ID: "q1", URI: "file:///a.jpg"})

	q, ok := l.Find("Fizik", "q1")
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)

	_, ok = l.Find("Fizik", "q2")
	assert.False(t, ok)
}
