package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-mfa-encryption-key hex-encoded 256-bit key protecting TOTP seeds
//	-challenge-sign-key MFA challenge token signing key
//	-challenge-issuer MFA challenge token issuer name
//	-challenge-duration MFA challenge token lifetime (e.g., "5m")
//	-require-mfa-challenge enforce challenge binding on MFA login step 2
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sweep-interval overdue reminder sweep interval (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var mfaEncryptionKey string
	var challengeSignKey string
	var challengeIssuer string
	var challengeDuration time.Duration
	var requireMfaChallenge bool
	var requestTimeout time.Duration
	var sweepInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&mfaEncryptionKey, "mfa-encryption-key", "", "Hex-encoded 256-bit MFA seed encryption key")
	flag.StringVar(&challengeSignKey, "challenge-sign-key", "", "MFA challenge token signing key")
	flag.StringVar(&challengeIssuer, "challenge-issuer", "", "MFA challenge token issuer")
	flag.DurationVar(&challengeDuration, "challenge-duration", 0, "MFA challenge token lifetime (e.g., 5m)")
	flag.BoolVar(&requireMfaChallenge, "require-mfa-challenge", false, "Require challenge token on MFA login step 2")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Overdue reminder sweep interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		Security: Security{
			MfaEncryptionKey:    mfaEncryptionKey,
			ChallengeSignKey:    challengeSignKey,
			ChallengeIssuer:     challengeIssuer,
			ChallengeDuration:   challengeDuration,
			RequireMfaChallenge: requireMfaChallenge,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
