/*
Package ports defines the collaborators the interview depends on but does not implement.

# Key Interfaces

  - Conversation: shows a prompt and reads one answer, or shows one message.
  - BrandSource: provides the known brand vocabulary in priority order.
  - RecordStore: appends a finished FleetRecord to durable storage.
  - Transcript: an append-only chat log, opened per interview and closed on every exit path.
*/
package ports
