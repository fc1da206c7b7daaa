/*
Package ports defines the driven ports (interfaces) for the Quill engine.

These interfaces decouple the playback core from where stories are stored and
how illustrations are produced.

# Key Interfaces

  - GraphLoader: Loads scene definitions (e.g., from Loam, a story bundle or memory).
  - ImageProvider: Produces an image URL for a scene's illustration seed.
*/
package ports
