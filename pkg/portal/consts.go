package portal

const DatesLayout = "2006-01-02 15:04:05"

// ---- Middleware / HTTP

const RequestIDHeader = "X-Request-ID"
const AuthorizationHeader = "Authorization"
const BearerPrefix = "bearer "

// ---- Middleware / Context

type contextKey string

const RequestIDKey contextKey = "request.id"
const AuthSubjectKey contextKey = "auth.subject"
