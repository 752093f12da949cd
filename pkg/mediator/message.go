package mediator

import (
	"reflect"
)

// MulticastMessage is delivered to every registered handler of its type, handlers return no result.
// Message types get it by embedding Notification.
type MulticastMessage interface {
	multicastMessage()
}

// SingleMessage is delivered to exactly one handler which returns a value of type R.
// Message types get it by embedding Request[R].
type SingleMessage[R any] interface {
	singleMessage(R)
}

// Notification marks a struct as a multicast message:
//
//	type PlayerDied struct {
//		mediator.Notification
//		PlayerID int
//	}
type Notification struct{}

func (Notification) multicastMessage() {}

// Request marks a struct as a single-result message answered with R:
//
//	type GetScore struct {
//		mediator.Request[int]
//		PlayerID int
//	}
type Request[R any] struct{}

func (Request[R]) singleMessage(R) {}

// MessageType identifies a message by its dynamic Go type.
// Pointer and value forms of the same struct are different message types.
type MessageType = reflect.Type

func messageTypeOf(msg any) MessageType {
	return reflect.TypeOf(msg)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
