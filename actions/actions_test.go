package actions

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/httptest"
	"github.com/gobuffalo/pop/v6"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sureinsurance/sure-api/domain"
	"github.com/sureinsurance/sure-api/models"
)

type ActionSuite struct {
	suite.Suite
	*require.Assertions
	app     *buffalo.App
	DB      *pop.Connection
	Session *buffalo.Session
}

// JSON creates an httptest.JSON request
func (as *ActionSuite) JSON(u string, args ...any) *httptest.JSON {
	return httptest.New(as.app).JSON(u, args...)
}

func Test_ActionSuite(t *testing.T) {
	as := &ActionSuite{
		app: App(),
	}
	c, err := pop.Connect(domain.EnvTest)
	if err == nil {
		models.DB = c
		as.DB = c
	}
	suite.Run(t, as)
}

// SetupTest sets the test suite to abort on first failure and sets the session store
func (as *ActionSuite) SetupTest() {
	as.Assertions = require.New(as.T())

	as.app.SessionStore = newSessionStore()
	s, _ := as.app.SessionStore.New(nil, as.app.SessionName)
	as.Session = &buffalo.Session{
		Session: s,
	}

	models.DestroyAll()
}

func (as *ActionSuite) decodeBody(body []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// sessionStore copied from gobuffalo/suite session.go
type sessionStore struct {
	sessions map[string]*sessions.Session
}

func (s *sessionStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	if s, ok := s.sessions[name]; ok {
		return s, nil
	}
	return s.New(r, name)
}

func (s *sessionStore) New(r *http.Request, name string) (*sessions.Session, error) {
	sess := sessions.NewSession(s, name)
	s.sessions[name] = sess
	return sess, nil
}

func (s *sessionStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	if s.sessions == nil {
		s.sessions = map[string]*sessions.Session{}
	}
	s.sessions[sess.Name()] = sess
	return nil
}

// NewSessionStore for action suite
func newSessionStore() sessions.Store {
	return &sessionStore{
		sessions: map[string]*sessions.Session{},
	}
}
