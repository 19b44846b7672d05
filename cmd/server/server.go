package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"

	"minisql/core"
	"minisql/sql"
)

// Server is a TCP server that parses SQL statements and returns their
// syntax trees as JSON. It executes nothing.
type Server struct {
	listener   net.Listener
	authConfig *AuthConfig
	done       chan struct{}
	wg         sync.WaitGroup
}

// NewServer creates a new parse server. authConfig may be nil to disable
// authentication.
func NewServer(authConfig *AuthConfig) *Server {
	return &Server{
		authConfig: authConfig,
		done:       make(chan struct{}),
	}
}

// Start begins listening for connections on the specified address.
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	s.listener = listener

	log.Infof("Parse server listening on %s", listener.Addr())

	go s.acceptLoop()
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	close(s.done)
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
	return nil
}

// Addr returns the server's listening address.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
				log.Errorf("Accept error: %v", err)
				continue
			}
		}

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	log.Infof("Client connected: %s", conn.RemoteAddr())

	state := &ConnectionState{}
	reader := bufio.NewReader(conn)

	for {
		select {
		case <-s.done:
			return
		default:
		}

		// One request per line
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				log.Errorf("Read error from %s: %v", conn.RemoteAddr(), err)
			}
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if lower := strings.ToLower(input); lower == "quit" || lower == "exit" {
			log.Infof("Client disconnected: %s", conn.RemoteAddr())
			return
		}

		var response Response
		switch {
		case strings.HasPrefix(strings.ToUpper(input), "AUTH "):
			response = s.handleAuth(input, state)

		case s.authConfig != nil && s.authConfig.Enabled && !state.IsAuthenticated():
			response = Response{
				Success: false,
				Error:   "authentication required: send AUTH JWT <token>",
			}

		default:
			response = s.handleRequest(input)
		}

		data, err := EncodeResponse(response)
		if err != nil {
			log.Errorf("Failed to encode response: %v", err)
			continue
		}

		if _, err := conn.Write(data); err != nil {
			log.Errorf("Write error to %s: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// handleRequest parses one request line. A line starting with '{' is decoded
// as a JSON Request; anything else is treated as bare SQL.
func (s *Server) handleRequest(input string) Response {
	request := Request{Query: input}
	if strings.HasPrefix(input, "{") {
		decoded, err := DecodeRequest([]byte(input))
		if err != nil {
			return Response{
				Success: false,
				Error:   fmt.Sprintf("malformed request: %v", err),
			}
		}
		request = decoded
	}

	if request.Tokens {
		return s.tokenize(request.Query)
	}
	return s.parse(request.Query)
}

func (s *Server) parse(query string) Response {
	stmt, err := sql.NewParser(query).Parse()
	if err != nil {
		return Response{
			Success: false,
			Error:   err.Error(),
		}
	}

	data, err := json.Marshal(stmt)
	if err != nil {
		return Response{
			Success: false,
			Error:   fmt.Sprintf("failed to encode syntax tree: %v", err),
		}
	}

	return Response{
		Success: true,
		Type:    statementType(stmt),
		Result:  data,
	}
}

func (s *Server) tokenize(query string) Response {
	tokens, err := sql.Tokenize(query)
	if err != nil {
		return Response{
			Success: false,
			Error:   err.Error(),
		}
	}

	infos := make([]TokenInfo, 0, len(tokens))
	for _, token := range tokens {
		if token.Type == sql.EOF {
			break
		}
		infos = append(infos, TokenInfo{
			Token:  token.String(),
			Offset: token.Pos.Offset,
			Line:   token.Pos.Line,
			Column: token.Pos.Column,
		})
	}

	data, _ := json.Marshal(infos)
	return Response{
		Success: true,
		Type:    "tokens",
		Result:  data,
	}
}

func statementType(stmt core.Statement) string {
	switch stmt.Type() {
	case core.SelectStatementType:
		return "select"
	case core.CreateTableStatementType:
		return "create_table"
	default:
		return "unknown"
	}
}
