package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWakeListener(t *testing.T) {
	l := NewWakeListener("host=localhost dbname=test")

	assert.NotNil(t, l)
	assert.Equal(t, "host=localhost dbname=test", l.connString)
	assert.NotNil(t, l.subs)
}

func TestWakeListenerDispatch(t *testing.T) {
	l := NewWakeListener("")
	ch := l.Register(TopicConversationCompleted)

	l.dispatch(TopicConversationCompleted)

	select {
	case <-ch:
	default:
		t.Fatal("expected a wake signal")
	}
}

func TestWakeListenerDispatchCoalesces(t *testing.T) {
	l := NewWakeListener("")
	ch := l.Register(TopicConversationCompleted)

	l.dispatch(TopicConversationCompleted)
	l.dispatch(TopicConversationCompleted)

	<-ch
	select {
	case <-ch:
		t.Fatal("signals for the same topic should coalesce")
	default:
	}
}

func TestWakeListenerDispatchIsTopicScoped(t *testing.T) {
	l := NewWakeListener("")
	ch := l.Register(TopicConversationCompleted)

	l.dispatch(TopicMetricsAggregated)

	select {
	case <-ch:
		t.Fatal("signal delivered to the wrong topic")
	default:
	}
}

func TestWakeListenerMultipleSubscribers(t *testing.T) {
	l := NewWakeListener("")
	ch1 := l.Register(TopicMetricsAggregated)
	ch2 := l.Register(TopicMetricsAggregated)

	l.dispatch(TopicMetricsAggregated)

	for _, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		default:
			t.Fatal("every subscriber should be signalled")
		}
	}
}
