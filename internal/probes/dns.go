// Package probes implements the narrow network clients the scan pipeline
// calls: DNS resolution, registration lookup, content fetch, reachability
// probing, and the security-header audit. Each client takes a bounded
// timeout and returns either a typed payload or a typed failure.
package probes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/swcstudio/domainscan/internal/models"
)

const (
	defaultResolver   = "1.1.1.1:53"
	defaultDNSTimeout = 5 * time.Second
)

// queryTypes is the fixed set of record types resolved for every hostname,
// in output order.
var queryTypes = []struct {
	recordType models.DNSRecordType
	qtype      uint16
}{
	{models.DNSRecordA, dns.TypeA},
	{models.DNSRecordAAAA, dns.TypeAAAA},
	{models.DNSRecordCNAME, dns.TypeCNAME},
	{models.DNSRecordMX, dns.TypeMX},
	{models.DNSRecordTXT, dns.TypeTXT},
	{models.DNSRecordNS, dns.TypeNS},
}

// DNSClient resolves all supported record types against a single resolver
type DNSClient struct {
	server string
	client *dns.Client
}

// NewDNSClient creates a resolver client. An empty server falls back to the
// default public resolver.
func NewDNSClient(server string, timeout time.Duration) *DNSClient {
	if server == "" {
		server = defaultResolver
	}
	if timeout <= 0 {
		timeout = defaultDNSTimeout
	}
	return &DNSClient{
		server: server,
		client: &dns.Client{Timeout: timeout},
	}
}

// Lookup resolves every record type for hostname. Record types with no
// answers are omitted. An error is returned only when every query failed at
// the transport level; the pipeline absorbs it into an empty record list.
func (c *DNSClient) Lookup(ctx context.Context, hostname string) ([]models.DNSRecord, error) {
	records := make([]models.DNSRecord, 0, len(queryTypes))
	failures := 0
	var lastErr error

	for _, qt := range queryTypes {
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(hostname), qt.qtype)

		in, _, err := c.client.ExchangeContext(ctx, msg, c.server)
		if err != nil {
			failures++
			lastErr = err
			continue
		}

		values := answerValues(in, qt.qtype)
		if len(values) > 0 {
			records = append(records, models.DNSRecord{Type: qt.recordType, Values: values})
		}
	}

	if failures == len(queryTypes) {
		return nil, &models.NetworkError{Op: "DNS lookup", Hostname: hostname, Err: lastErr}
	}
	return records, nil
}

// answerValues extracts the printable values for one record type from a
// response, skipping answers of other types (e.g. CNAMEs in an A response).
func answerValues(in *dns.Msg, qtype uint16) []string {
	var values []string
	for _, ans := range in.Answer {
		if ans.Header().Rrtype != qtype {
			continue
		}
		switch rr := ans.(type) {
		case *dns.A:
			values = append(values, rr.A.String())
		case *dns.AAAA:
			values = append(values, rr.AAAA.String())
		case *dns.CNAME:
			values = append(values, strings.TrimSuffix(rr.Target, "."))
		case *dns.MX:
			values = append(values, fmt.Sprintf("%d %s", rr.Preference, strings.TrimSuffix(rr.Mx, ".")))
		case *dns.TXT:
			values = append(values, strings.Join(rr.Txt, ""))
		case *dns.NS:
			values = append(values, strings.TrimSuffix(rr.Ns, "."))
		}
	}
	return values
}
