/*
Package aes256 provides a byte-oriented AES-256 block cipher.

The cipher operates on 16 byte blocks with a 32 byte key, running the 14 rounds described in FIPS-197.
It doesn't ship any literal lookup tables.
The substitution box and its inverse are derived from arithmetic in GF(2^8) the first time the package is used.

# How it works:

A Cipher is created with New and keyed exactly once with SetKey, which derives both the encryption and decryption round key schedules.
Once keyed, EncryptBlock and DecryptBlock are pure functions of the key and may be called any number of times.
Using a Cipher before it's keyed is a programming error and will panic with ErrNotKeyed.

# General guidelines:
  - Cipher also satisfies cipher.Block from the standard library, so it can be used with the modes in crypto/cipher.
  - Only single-block (ECB) operations are provided here. Chaining is the caller's concern.
  - Prefer crypto/aes when raw throughput matters, since it uses hardware acceleration where available.
*/
package aes256
