/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

// Credential is a username and password pair for the auth endpoint.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CredentialScenario derives the credential to submit from a known valid
// pair.
type CredentialScenario func(valid Credential, gen DataGenerator) Credential

func ValidCredential(valid Credential, _ DataGenerator) Credential {
	return valid
}

// UnknownCredential ignores the valid pair entirely.
func UnknownCredential(_ Credential, gen DataGenerator) Credential {
	return Credential{Username: gen.RandomUsername(), Password: gen.RandomPassword()}
}

func MissingPassword(valid Credential, _ DataGenerator) Credential {
	return Credential{Username: valid.Username}
}

func MissingUsername(valid Credential, _ DataGenerator) Credential {
	return Credential{Password: valid.Password}
}

func WrongPassword(valid Credential, gen DataGenerator) Credential {
	return Credential{Username: valid.Username, Password: gen.RandomPassword()}
}

func WrongUsername(valid Credential, gen DataGenerator) Credential {
	return Credential{Username: gen.RandomUsername(), Password: valid.Password}
}

// Payload renders the credential as an auth request body. Empty fields are
// sent as empty strings, not omitted.
func (c Credential) Payload() map[string]any {
	return map[string]any{
		"username": c.Username,
		"password": c.Password,
	}
}

// Credentials extracts the username and password pairs of listed users.
// Users without both fields as strings are skipped.
func Credentials(users []map[string]any) []Credential {
	var out []Credential

	for _, user := range users {
		username, ok := user["username"].(string)
		if !ok {
			continue
		}

		password, ok := user["password"].(string)
		if !ok {
			continue
		}

		out = append(out, Credential{Username: username, Password: password})
	}

	return out
}
