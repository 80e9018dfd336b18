package authn

import (
	"crypto/subtle"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/carevault/hdms-in-go/pkg/model"
)

// credential rows are (username, password, role), in that order.
const credentialFields = 3

// LoadCredentials parses the credential source. A row with the wrong field
// count fails the whole load; silently dropping a row would lock a staff
// member out with no trace.
func LoadCredentials(path string) ([]model.Credential, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("credential source unavailable: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = credentialFields

	var creds []model.Credential
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("malformed credential row at line %d: %w", line, err)
		}
		creds = append(creds, model.Credential{
			Username: row[0],
			Password: row[1],
			Role:     model.Role(row[2]),
		})
	}
	return creds, nil
}

// Authenticate loads the credential source and returns the credential whose
// username and password both match exactly. A clean mismatch returns
// (nil, nil); an error means the source itself could not be read.
//
// Comparison is case-sensitive and stateless: no lockout, no attempt
// counter, every call is independent.
func Authenticate(path, username, password string) (*model.Credential, error) {
	creds, err := LoadCredentials(path)
	if err != nil {
		return nil, err
	}

	for i := range creds {
		if creds[i].Username != username {
			continue
		}
		ok, err := comparePassword(password, creds[i].Password)
		if err != nil {
			return nil, fmt.Errorf("credential for %q is unusable: %w", username, err)
		}
		if ok {
			return &creds[i], nil
		}
		// Usernames are unique within the source; a password mismatch on
		// the matching row is a failed login.
		return nil, nil
	}
	return nil, nil
}

// comparePassword checks a submitted password against the stored value,
// which is either an argon2id-encoded hash or a legacy plaintext password.
// Both paths compare in constant time.
func comparePassword(submitted, stored string) (bool, error) {
	if isEncodedHash(stored) {
		return verifyEncodedHash(submitted, stored)
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) == 1, nil
}
