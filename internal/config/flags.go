// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
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

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-provider wallet provider base URL
//	-chain provider namespace (e.g. "constellation")
//	-request-timeout provider call timeout (e.g. "30s"; 0 disables)
//	-key-order payload key order: insertion | sorted
//	-charset payload charset: latin1 | utf8
//	-toast-duration notification lifetime (e.g. "3s")
//	-predefined comma separated field names for the dropdown
//	-log-file client log file path
//	-log-level log level
//	-c/-config json file path with configs
//	-a development wallet address in format [host]:[port]
//	-passphrase development wallet passphrase
//	-salt development wallet key derivation salt
//	-accounts development wallet account count
//	-approval development wallet approval mode: auto | reject
//	-approval-delay simulated approval delay
func ParseFlags(args []string) (*StructuredConfig, error) {
	var devWalletAddress NetAddress
	var providerURL, chain string
	var requestTimeout, toastDuration, approvalDelay time.Duration
	var keyOrder, charset string
	var predefined string
	var logFile, logLevel string
	var jsonConfigPath string
	var passphrase, salt, approval string
	var accounts int

	fs := flag.NewFlagSet("go-dag-signer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&providerURL, "provider", "", "Wallet provider base URL")
	fs.StringVar(&chain, "chain", "", "Wallet provider namespace")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Provider call timeout (e.g., 30s); 0 waits forever")
	fs.StringVar(&keyOrder, "key-order", "", "Payload key order: insertion or sorted")
	fs.StringVar(&charset, "charset", "", "Payload charset: latin1 or utf8")
	fs.DurationVar(&toastDuration, "toast-duration", 0, "Notification lifetime (e.g., 3s)")
	fs.StringVar(&predefined, "predefined", "", "Comma separated predefined field names")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.Var(&devWalletAddress, "a", "Development wallet net address host:port")
	fs.StringVar(&passphrase, "passphrase", "", "Development wallet passphrase")
	fs.StringVar(&salt, "salt", "", "Development wallet key derivation salt")
	fs.IntVar(&accounts, "accounts", 0, "Development wallet account count")
	fs.StringVar(&approval, "approval", "", "Development wallet approval mode: auto or reject")
	fs.DurationVar(&approvalDelay, "approval-delay", 0, "Development wallet simulated approval delay")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogFile:  logFile,
			LogLevel: logLevel,
		},
		Provider: Provider{
			URL:            providerURL,
			Chain:          chain,
			RequestTimeout: requestTimeout,
		},
		Signing: Signing{
			KeyOrder: keyOrder,
			Charset:  charset,
		},
		Notifications: Notifications{
			Duration: toastDuration,
		},
		Form: Form{
			PredefinedFields: splitList(predefined),
		},
		DevWallet: DevWallet{
			HTTPAddress:   devWalletAddress.String(),
			Passphrase:    passphrase,
			Salt:          salt,
			Accounts:      accounts,
			Approval:      approval,
			ApprovalDelay: approvalDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
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
