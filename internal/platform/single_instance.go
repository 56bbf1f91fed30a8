package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	showRequest  = "show"
	dialTimeout  = 500 * time.Millisecond
	readDeadline = time.Second
)

// InstanceGuard holds the single-instance lock. While held it accepts
// show requests from later launches.
type InstanceGuard struct {
	listener net.Listener
	address  string

	mu     sync.Mutex
	onShow func()
	done   chan struct{}
}

// AcquireSingleInstance attempts to bind a deterministic localhost port.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	guard := &InstanceGuard{
		listener: listener,
		address:  address,
		done:     make(chan struct{}),
	}
	go guard.serve()
	return guard, nil
}

// OnShow registers the callback run when another launch asks this instance
// to come to the front.
func (guard *InstanceGuard) OnShow(callback func()) {
	if guard == nil {
		return
	}
	guard.mu.Lock()
	guard.onShow = callback
	guard.mu.Unlock()
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	<-guard.done
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// RequestShow asks the running instance to show its window.
func RequestShow(appName string) error {
	conn, err := net.DialTimeout("tcp", instanceAddress(appName), dialTimeout)
	if err != nil {
		return fmt.Errorf("contact running instance: %w", err)
	}
	defer conn.Close()
	if _, err := fmt.Fprintln(conn, showRequest); err != nil {
		return fmt.Errorf("send show request: %w", err)
	}
	return nil
}

func (guard *InstanceGuard) serve() {
	defer close(guard.done)
	for {
		conn, err := guard.listener.Accept()
		if err != nil {
			return
		}
		guard.handle(conn)
	}
}

func (guard *InstanceGuard) handle(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil || strings.TrimSpace(line) != showRequest {
		return
	}
	guard.mu.Lock()
	callback := guard.onShow
	guard.mu.Unlock()
	if callback != nil {
		callback()
	}
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
