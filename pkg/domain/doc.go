/*
Package domain contains the core domain models of the Quill playback engine.

It defines the story graph entities and the snapshot types the engine hands to
presentation layers. This package is kept pure and free of I/O.

# Key Entities

  - Node: A scene of the story (text, illustration seed, choices, optional ending).
  - Page: One displayable unit of a resolved sequence.
  - View: A full snapshot of a session for rendering.
  - TimelineEntry: A rewindable point of the furthest path the player reached.
*/
package domain
