/*
Package runner connects an interview to the outside world.

It provides the terminal and headless implementations of ports.Conversation
and a Recorder that copies the dialogue into a transcript.

# Key Components

  - TextConversation: interactive prompts on a terminal or pipe.
  - JSONConversation: one JSON event per line for scripted clients.
  - Recorder: mirrors a Conversation into a ports.Transcript.
  - SanitizeInput: size, encoding and control-character checks on answers.

# Usage

	conv := runner.Record(runner.NewTextConversation(os.Stdin, os.Stdout), transcript)
	record, err := interview.Run(ctx, interview.New(conv, matcher.New(brands)))
*/
package runner
