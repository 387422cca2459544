package stub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

type contextUserKey struct{}

type Server struct {
	store  *Store
	auth   *authority
	logger port.LoggerPort
	router chi.Router
}

func NewServer(store *Store, jwtSecret string, logger port.LoggerPort) *Server {
	s := &Server{
		store:  store,
		auth:   newAuthority(jwtSecret),
		logger: logger.WithFields(port.Fields{"component": "StubServer"}),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.traceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users/login/", s.handleLogin)
		r.Post("/users/refresh/", s.handleRefresh)
		r.Post("/users/create/", s.handleRegister)

		r.Get("/properties/filter/", s.handleFilter)
		r.Get("/properties/filter/options/", s.handleFilterOptions)

		resources := map[string][]string{
			"house":      {"HOUSE", "BOARDING"},
			"apartment":  {"APARTMENT"},
			"commercial": {"COMMERCIAL"},
			"hotels":     {"LODGE_HOTEL"},
		}
		for segment, types := range resources {
			segment, types := segment, types
			r.Route("/"+segment, func(r chi.Router) {
				r.Get("/", s.handleList(types))
				r.Get("/{id}/", s.handleGet)

				r.Group(func(r chi.Router) {
					r.Use(s.requireAuth)
					r.Get("/my/", s.handleMy(types))
					r.Post("/create/", s.handleCreate(types[0]))
					r.Patch("/{id}/", s.handleUpdate)
					r.Delete("/{id}/", s.handleDelete)
				})
			})
		}

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/users/me/", s.handleMe)

			r.Get("/reservations/", s.handleListReservations)
			r.Post("/reservations/", s.handleCreateReservation)
			r.Delete("/reservations/{id}/", s.handleCancelReservation)

			r.Get("/threads/", s.handleListThreads)
			r.Get("/threads/{id}/messages/", s.handleListMessages)
			r.Post("/threads/{id}/messages/", s.handleSendMessage)
		})
	})

	return r
}

func (s *Server) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		s.logger.Debug("Request", port.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"trace_id": traceID,
		})
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Authentication credentials were not provided."})
			return
		}
		claims, err := s.auth.verify(strings.TrimPrefix(header, "Bearer "), "access")
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"})
			return
		}
		userID, _ := claims["user_id"].(string)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextUserKey{}, userID)))
	})
}

func currentUserID(r *http.Request) string {
	id, _ := r.Context().Value(contextUserKey{}).(string)
	return id
}

// --- auth handlers ---

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	user, ok := devUsers[body.Email]
	if !ok || user.Password != body.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
		return
	}

	access, refresh, err := s.auth.issueTokens(user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to issue tokens"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access, "refresh": refresh})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	claims, err := s.auth.verify(body.Refresh, "refresh")
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Refresh token is invalid or expired"})
		return
	}
	sub, _ := claims["sub"].(string)
	user, ok := userByID(sub)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Unknown user"})
		return
	}

	access, refresh, err := s.auth.issueTokens(user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to issue tokens"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access, "refresh": refresh})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}
	if reg.Email == "" || reg.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"email":    "This field is required.",
			"password": "This field is required.",
		})
		return
	}
	if _, exists := devUsers[reg.Email]; exists {
		writeJSON(w, http.StatusBadRequest, map[string]string{"email": "A user with this email already exists."})
		return
	}

	user := stubUser{
		ID:        "user-" + uuid.New().String()[:8],
		Email:     reg.Email,
		Password:  reg.Password,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Phone:     reg.Phone,
		IsAgent:   reg.IsAgent,
	}
	devUsers[reg.Email] = user
	writeJSON(w, http.StatusCreated, userPayload(user))
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userByID(currentUserID(r))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "User not found"})
		return
	}
	writeJSON(w, http.StatusOK, userPayload(user))
}

func userPayload(u stubUser) map[string]interface{} {
	return map[string]interface{}{
		"id":           u.ID,
		"email":        u.Email,
		"first_name":   u.FirstName,
		"last_name":    u.LastName,
		"phone_number": u.Phone,
		"is_agent":     u.IsAgent,
		"is_verified":  u.IsVerified,
	}
}

// --- listing handlers ---

func (s *Server) handleList(types []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nonNil(s.store.ListByType(types...)))
	}
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleMy(types []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nonNil(s.store.OwnedBy(currentUserID(r), types...)))
	}
}

func (s *Server) handleCreate(propertyType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Expected multipart form data"})
			return
		}

		rec := record{"property_type": propertyType}
		for key, values := range r.MultipartForm.Value {
			if len(values) == 0 || strings.HasPrefix(key, "photo_meta_") || key == "video_caption" {
				continue
			}
			rec[key] = decodeFormValue(values[0])
		}

		id := uuid.New().String()[:8]
		var photos []record
		for i, file := range r.MultipartForm.File["photos"] {
			photo := record{
				"image":      fmt.Sprintf("https://cdn.example.test/uploads/%s/%s", id, file.Filename),
				"is_primary": i == 0,
			}
			if meta := r.MultipartForm.Value["photo_meta_"+fmt.Sprint(i)]; len(meta) > 0 {
				var decoded record
				if json.Unmarshal([]byte(meta[0]), &decoded) == nil {
					if caption, ok := decoded["caption"].(string); ok {
						photo["caption"] = caption
					}
					if primary, ok := decoded["is_primary"].(bool); ok {
						photo["is_primary"] = primary
					}
				}
			}
			photos = append(photos, photo)
		}
		if photos != nil {
			rec["photos"] = photos
		}

		var videos []record
		for _, file := range r.MultipartForm.File["videos"] {
			video := record{
				"video": fmt.Sprintf("https://cdn.example.test/uploads/%s/%s", id, file.Filename),
			}
			if captions := r.MultipartForm.Value["video_caption"]; len(captions) > 0 {
				video["caption"] = captions[0]
			}
			videos = append(videos, video)
		}
		if videos != nil {
			rec["videos"] = videos
		}

		rec["created_at"] = time.Now().UTC().Format(time.RFC3339)
		created := s.store.Insert(rec, currentUserID(r))
		writeJSON(w, http.StatusCreated, created)
	}
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Expected multipart form data"})
		return
	}
	fields := record{}
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			fields[key] = decodeFormValue(values[0])
		}
	}

	rec, ok := s.store.Update(chi.URLParam(r, "id"), fields)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var matched []record
	s.store.mu.RLock()
	for _, rec := range s.store.records {
		if matchesFilter(rec, params) {
			matched = append(matched, rec)
		}
	}
	s.store.mu.RUnlock()

	if params.Get("count_only") == "true" {
		writeJSON(w, http.StatusOK, map[string]int{"count": len(matched)})
		return
	}
	writeJSON(w, http.StatusOK, nonNil(matched))
}

func (s *Server) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	types := make([]string, 0, len(domain.KnownPropertyTypes))
	for _, t := range domain.KnownPropertyTypes {
		types = append(types, string(t))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"property_types": types,
		"amenity_categories": map[string][]string{
			"bathroom":      {"has_private_bathroom", "has_hot_water", "has_bathtub", "has_shower"},
			"kitchen":       {"has_kitchen", "has_refrigerator", "has_microwave", "has_coffee_maker"},
			"entertainment": {"has_tv", "has_wifi", "has_streaming_services"},
			"heating":       {"has_air_conditioning", "has_heating", "has_ceiling_fan"},
			"safety":        {"has_smoke_detector", "has_security_cameras", "has_secure_parking"},
			"accessibility": {"has_wheelchair_access", "has_elevator", "has_step_free_access"},
		},
	})
}

// --- reservations and messaging ---

func (s *Server) handleListReservations(w http.ResponseWriter, r *http.Request) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	writeJSON(w, http.StatusOK, nonNil(s.store.reservations))
}

func (s *Server) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	var rec record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}
	s.store.mu.Lock()
	rec["id"] = "r-" + s.store.allocateID()
	rec["status"] = "PENDING"
	s.store.reservations = append(s.store.reservations, rec)
	s.store.mu.Unlock()
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleCancelReservation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, rec := range s.store.reservations {
		if rec["id"] == id {
			s.store.reservations = append(s.store.reservations[:i], s.store.reservations[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (s *Server) handleListThreads(w http.ResponseWriter, r *http.Request) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	writeJSON(w, http.StatusOK, nonNil(s.store.threads))
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	writeJSON(w, http.StatusOK, nonNil(s.store.messages[chi.URLParam(r, "id")]))
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	threadID := chi.URLParam(r, "id")
	var body struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Body == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"body": "This field is required."})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	message := record{
		"id":      "m-" + s.store.allocateID(),
		"thread":  threadID,
		"sender":  currentUserID(r),
		"body":    body.Body,
		"sent_at": time.Now().UTC().Format(time.RFC3339),
	}
	s.store.messages[threadID] = append(s.store.messages[threadID], message)
	for _, thread := range s.store.threads {
		if thread["id"] == threadID {
			thread["last_message"] = body.Body
			thread["last_message_at"] = message["sent_at"]
		}
	}
	writeJSON(w, http.StatusCreated, message)
}

// --- helpers ---

// decodeFormValue turns a multipart text part back into a typed value when it
// parses as JSON, keeping numbers, booleans and tag lists intact.
func decodeFormValue(raw string) interface{} {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	switch trimmed[0] {
	case '{', '[', 't', 'f', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var decoded interface{}
		if json.Unmarshal([]byte(trimmed), &decoded) == nil {
			return decoded
		}
	}
	return raw
}

func nonNil(records []record) []record {
	if records == nil {
		return []record{}
	}
	return records
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
