/*
Package keystream provides a pseudorandom byte generator built on AES-256, with state that survives restarts.

# How it works:

The generator's State is a secret key, a 128-bit Counter, and the most recently produced 16 byte block.
Each time a block is exhausted, the counter is incremented, its bytes are XOR'd into the previous block, and the result is encrypted to become the next block.
This is a ciphertext feedback counter construction, isolated in NextBlock so it can be audited or replaced on its own.

After every advance the whole State is written to a Store, so a new process picks up where the last one left off instead of reusing counter values.
If the stored State is missing or fails to parse, it's discarded entirely and a fresh State is synthesized and persisted as the new baseline.

# Important note:

Persistence happens once per block, not once per byte.
A crash after bytes are handed out, but before the next successful save, followed by a restart from the older State will replay keystream that was already used.
By default a failed save is logged and otherwise ignored. Use RequirePersist to make save failures stop the generator instead.

# General guidelines:
  - The threat model is a good local default PRNG. Anyone that can read the state file can predict future output.
  - A Store should have a single owner. Two processes sharing a state file will reuse keystream.
  - MemoryStore is useful for tests that need a known State.
*/
package keystream
