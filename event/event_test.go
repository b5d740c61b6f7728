package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFireNotifiesInRegistrationOrder(t *testing.T) {
	var em Emitter
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		em.AddObserver(ObserverFunc(func(e Event) bool {
			order = append(order, i)
			return false
		}))
	}

	handled := em.Fire(Event{Kind: StateChange})

	require.False(t, handled)
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestFireInvokesAllObserversAndCombinesResults(t *testing.T) {
	var em Emitter
	calls := 0
	em.AddObserver(ObserverFunc(func(e Event) bool {
		calls++
		return true
	}))
	em.AddObserver(ObserverFunc(func(e Event) bool {
		calls++
		return false
	}))

	require.True(t, em.Fire(Event{Kind: Click}), "any handled observer marks the event handled")
	require.Equal(t, 2, calls, "an early handled result must not short-circuit later observers")
}

func TestFireIsReentrant(t *testing.T) {
	var em Emitter
	nestedRan := false

	em.AddObserver(ObserverFunc(func(e Event) bool {
		if e.Kind == StateChange {
			// Re-enter the emitter from inside a handler.
			em.AddObserver(ObserverFunc(func(e Event) bool {
				nestedRan = true
				return false
			}))
			em.Fire(Event{Kind: Toggle})
		}
		return false
	}))

	em.Fire(Event{Kind: StateChange})

	require.True(t, nestedRan, "observer added mid-fire must see the nested event")
}

func TestKindString(t *testing.T) {
	require.Equal(t, "statechange", StateChange.String())
	require.Equal(t, "drawcard", DrawCard.String())
	require.Equal(t, "toggle", Toggle.String())
	require.Equal(t, "click", Click.String())
}
