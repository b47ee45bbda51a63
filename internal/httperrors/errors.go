// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for requests to the QRZ service.
package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// FormatNetworkError prints troubleshooting help for err to w and returns err
// wrapped for the caller. It detects common error types (timeout, DNS,
// connection refused, TLS, server errors).
func FormatNetworkError(w io.Writer, err error, context string, host string) error {
	if err == nil {
		return nil
	}

	displayErrorMessage(w, err, context, host)

	return fmt.Errorf("network error: %w", err)
}

// displayErrorMessage shows a formatted error message based on error type.
func displayErrorMessage(w io.Writer, err error, context string, host string) {
	errStr := err.Error()

	switch {
	case isTimeoutError(err):
		showTimeoutError(w, context)
	case isDNSError(err):
		showDNSError(w, context, host)
	case isConnectionRefusedError(err):
		showConnectionRefusedError(w, context)
	case isSSLError(err):
		showSSLError(w, context)
	case isServerError(errStr):
		showServerError(w, context)
	default:
		showGenericError(w, context, host, errStr)
	}
}

// Classify returns a short label for the kind of network failure.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case isTimeoutError(err):
		return "timeout"
	case isDNSError(err):
		return "dns"
	case isConnectionRefusedError(err):
		return "connection_refused"
	case isSSLError(err):
		return "tls"
	case isServerError(err.Error()):
		return "server"
	default:
		return "network"
	}
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	if err == nil {
		return false
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "ssl") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// isServerError checks if the error indicates a server-side problem (5xx errors).
func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	return strings.Contains(lower, "status 500") ||
		strings.Contains(lower, "status 502") ||
		strings.Contains(lower, "status 503") ||
		strings.Contains(lower, "status 504") ||
		strings.Contains(lower, "internal server error") ||
		strings.Contains(lower, "bad gateway") ||
		strings.Contains(lower, "service unavailable") ||
		strings.Contains(lower, "gateway timeout")
}

func showTimeoutError(w io.Writer, context string) {
	pterm.Fprintln(w, pterm.Sprintf("⏱️  Connection timeout while %s", context))
	pterm.Fprintln(w)
	pterm.Fprintln(w, "QRZ took too long to respond. This could mean:")
	pterm.Fprintln(w, "  • Slow internet connection")
	pterm.Fprintln(w, "  • The XML data service is under heavy load")
	pterm.Fprintln(w, "  • A firewall is blocking the connection")
	pterm.Fprintln(w)
	pterm.Fprintln(w, "Try again, or raise --timeout.")
	pterm.Fprintln(w)
}

func showDNSError(w io.Writer, context string, host string) {
	pterm.Fprintln(w, pterm.Sprintf("🌐 Cannot resolve server address while %s", context))
	pterm.Fprintln(w)
	pterm.Fprintln(w, pterm.Sprintf("Unable to look up %s. Please check:", host))
	pterm.Fprintln(w, "  • Your internet connection is working")
	pterm.Fprintln(w, "  • DNS settings are correct")
	pterm.Fprintln(w, "  • The --endpoint value, if you set one")
	pterm.Fprintln(w)
}

func showConnectionRefusedError(w io.Writer, context string) {
	pterm.Fprintln(w, pterm.Sprintf("🚫 Connection refused while %s", context))
	pterm.Fprintln(w)
	pterm.Fprintln(w, "The server is not accepting connections. This could mean:")
	pterm.Fprintln(w, "  • The service is temporarily down")
	pterm.Fprintln(w, "  • Firewall is blocking the connection")
	pterm.Fprintln(w, "  • Wrong server address or port")
	pterm.Fprintln(w)
}

func showSSLError(w io.Writer, context string) {
	pterm.Fprintln(w, pterm.Sprintf("🔒 Secure connection failed while %s", context))
	pterm.Fprintln(w)
	pterm.Fprintln(w, "Cannot establish a secure HTTPS connection. This could mean:")
	pterm.Fprintln(w, "  • SSL/TLS certificate issue")
	pterm.Fprintln(w, "  • Network proxy interfering with HTTPS")
	pterm.Fprintln(w, "  • System clock is incorrect")
	pterm.Fprintln(w)
}

func showServerError(w io.Writer, context string) {
	pterm.Fprintln(w, pterm.Sprintf("⚠️  Server error while %s", context))
	pterm.Fprintln(w)
	pterm.Fprintln(w, "The QRZ XML data service returned an internal error.")
	pterm.Fprintln(w, "This is not a problem with your setup; please try again in a few minutes.")
	pterm.Fprintln(w)
}

func showGenericError(w io.Writer, context string, host string, errDetails string) {
	pterm.Fprintln(w, pterm.Sprintf("❌ Cannot connect to QRZ while %s", context))
	pterm.Fprintln(w)
	pterm.Fprintln(w, "Please check:")
	pterm.Fprintln(w, "  • Your internet connection")
	pterm.Fprintln(w, pterm.Sprintf("  • Whether %s is accessible from your network", host))
	pterm.Fprintln(w, "  • Firewall settings that might block HTTPS requests")
	pterm.Fprintln(w)

	if errDetails != "" {
		shortErr := errDetails
		if len(shortErr) > 100 {
			shortErr = shortErr[:100] + "..."
		}
		pterm.Fprintln(w, pterm.Gray("Technical details: "+shortErr))
		pterm.Fprintln(w)
	}
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
