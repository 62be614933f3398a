// Package crypt provides the symmetric encryption capability used for
// the optionally encrypted text message of an exchange.
//
// The package focuses on:
//   - A small capability interface (generate key, encrypt, decrypt) so
//     the orchestrators never touch cipher internals
//   - A key text form that can never contain the envelope delimiter
//
// Key Components:
//
//   - ICipher: The capability interface. The only contract the rest of
//     the system relies on is Decrypt(Encrypt(t, k), k) == t.
//
//   - Key: base64url text form of 32 random bytes. The base64url
//     alphabet (A-Z, a-z, 0-9, '-', '_') contains no '|', so splitting
//     the transmitted envelope on the first "|||" occurrence is
//     unambiguous by construction.
//
//   - xChaCha20CipherImpl: XChaCha20-Poly1305 AEAD implementation with a
//     random 24 byte nonce prepended to each ciphertext. Authenticated,
//     so decryption under a wrong or tampered key fails loudly.
//
// Thread Safety:
//
//	The cipher implementation is stateless and safe for concurrent use.
package crypt
