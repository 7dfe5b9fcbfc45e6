// Package interview implements the dialogue that collects a fleet record.
//
// A Machine holds the record and the current State. Each State is a Kind plus
// the brand index and model name it refers to. Answers go through Step, which
// either moves to the next State or rejects the answer with a message sent to
// the user. States that need no answer are resolved by Advance.
//
// While brands are being described the user may say "start over" to redo all
// brands, or "correct <brand>" to redo a single one.
//
// Run wires a Machine to its Conversation:
//
//	m := interview.New(conv, matcher.New(brands))
//	record, err := interview.Run(ctx, m)
package interview
