// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import (
	"encoding/base64"

	"golang.org/x/crypto/ssh"
)

// Fingerprint returns the SHA256 fingerprint of base64 key data as found in
// the second column of an authorized_keys line. ok is false when the data
// does not decode to a public key; no other judgement is made about the key.
func Fingerprint(data string) (fp string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", false
	}
	pub, err := ssh.ParsePublicKey(raw)
	if err != nil {
		return "", false
	}
	return ssh.FingerprintSHA256(pub), true
}
