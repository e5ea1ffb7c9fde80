package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestThreadSubject(t *testing.T) {
	id := uuid.MustParse("0192a1b2-0000-7000-8000-000000000001")

	assert.Equal(t,
		"bystrodel.order.0192a1b2-0000-7000-8000-000000000001.message",
		ThreadSubject("order", id, KindMessage),
	)
	assert.Equal(t,
		"bystrodel.ticket.0192a1b2-0000-7000-8000-000000000001.typing",
		ThreadSubject("ticket", id, KindTyping),
	)
}

func TestThreadWildcardCoversAllKinds(t *testing.T) {
	id := uuid.New()
	wildcard := ThreadWildcard("order", id)

	prefix := "bystrodel.order." + id.String() + "."
	assert.Equal(t, prefix+">", wildcard)

	for _, kind := range []string{KindMessage, KindStatus, KindTyping} {
		subject := ThreadSubject("order", id, kind)
		assert.Equal(t, prefix+kind, subject)
	}
}
