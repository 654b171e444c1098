package discovery

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"
)

// DialTimeout bounds Reachable when ctx has no earlier deadline
const DialTimeout = 2 * time.Second

// Reachable reports whether something accepts TCP connections on host:port
func Reachable(ctx context.Context, host string, port int) error {
	ctx, cancel := context.WithTimeout(ctx, DialTimeout)
	defer cancel()

	var d net.Dialer
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("nothing is listening on %s: %w", addr, err)
	}
	conn.Close()
	return nil
}
