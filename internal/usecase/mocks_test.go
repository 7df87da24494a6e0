package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"winestudy/internal/domain/catalog"
	"winestudy/internal/domain/progress"
	"winestudy/internal/domain/session"
	"winestudy/internal/domain/study"
	"winestudy/internal/domain/tasting"
	"winestudy/internal/domain/user"
	"winestudy/internal/infrastructure/identity"
	"winestudy/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User // by user_id
	err   error
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]user.User{}}
	for _, u := range users {
		r.users[u.UserID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[u.UserID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (user.User, error) {
	if r.err != nil {
		return user.User{}, r.err
	}
	u, ok := r.users[userID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if r.err != nil {
		return user.User{}, r.err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if err == user.ErrNotFound {
		return false, nil
	}
	return false, err
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, userID, name string, picture *string) error {
	u, ok := r.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.Name = name
	u.Picture = picture
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) UpdateLanguage(_ context.Context, userID, language string) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.PreferredLanguage = language
	r.users[userID] = u
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]session.Session // by token
	deleted  []string
}

func newFakeSessionRepo(sessions ...session.Session) *fakeSessionRepo {
	r := &fakeSessionRepo{sessions: map[string]session.Session{}}
	for _, s := range sessions {
		r.sessions[s.SessionToken] = s
	}
	return r
}

func (r *fakeSessionRepo) Create(_ context.Context, s session.Session) error {
	r.sessions[s.SessionToken] = s
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (session.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(r.sessions, token)
	r.deleted = append(r.deleted, token)
	return nil
}

type fakeProgressRepo struct {
	recs map[string]progress.Progress // by user_id
	err  error
}

func newFakeProgressRepo(recs ...progress.Progress) *fakeProgressRepo {
	r := &fakeProgressRepo{recs: map[string]progress.Progress{}}
	for _, p := range recs {
		r.recs[p.UserID] = p
	}
	return r
}

func (r *fakeProgressRepo) Create(_ context.Context, p progress.Progress) error {
	if r.err != nil {
		return r.err
	}
	r.recs[p.UserID] = p
	return nil
}

func (r *fakeProgressRepo) GetByUser(_ context.Context, userID string) (progress.Progress, error) {
	if r.err != nil {
		return progress.Progress{}, r.err
	}
	p, ok := r.recs[userID]
	if !ok {
		return progress.Progress{}, progress.ErrNotFound
	}
	return p, nil
}

func (r *fakeProgressRepo) IncTotalTastings(_ context.Context, userID string, delta int) error {
	if r.err != nil {
		return r.err
	}
	p := r.recs[userID]
	p.UserID = userID
	p.TotalTastings += delta
	r.recs[userID] = p
	return nil
}

func (r *fakeProgressRepo) AddCompletedLesson(_ context.Context, userID, lessonID, lastActivity string) error {
	if r.err != nil {
		return r.err
	}
	p := r.recs[userID]
	p.UserID = userID
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			r.recs[userID] = p
			return nil
		}
	}
	p.CompletedLessons = append(p.CompletedLessons, lessonID)
	p.LastActivity = lastActivity
	r.recs[userID] = p
	return nil
}

func (r *fakeProgressRepo) IncQuizScore(_ context.Context, userID, trackID string) error {
	if r.err != nil {
		return r.err
	}
	p := r.recs[userID]
	p.UserID = userID
	if p.QuizScores == nil {
		p.QuizScores = map[string]int{}
	}
	p.QuizScores[trackID]++
	r.recs[userID] = p
	return nil
}

type fakeTastingRepo struct {
	notes []tasting.Note
	err   error
}

func (r *fakeTastingRepo) Create(_ context.Context, n tasting.Note) error {
	if r.err != nil {
		return r.err
	}
	r.notes = append(r.notes, n)
	return nil
}

func (r *fakeTastingRepo) ListByUser(_ context.Context, userID string) ([]tasting.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []tasting.Note{}
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeTastingRepo) GetForUser(_ context.Context, tastingID, userID string) (tasting.Note, error) {
	if r.err != nil {
		return tasting.Note{}, r.err
	}
	for _, n := range r.notes {
		if n.TastingID == tastingID && n.UserID == userID {
			return n, nil
		}
	}
	return tasting.Note{}, tasting.ErrNotFound
}

func (r *fakeTastingRepo) DeleteForUser(_ context.Context, tastingID, userID string) error {
	if r.err != nil {
		return r.err
	}
	for i, n := range r.notes {
		if n.TastingID == tastingID && n.UserID == userID {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return tasting.ErrNotFound
}

type fakeStudyRepo struct {
	tracks    []study.Track
	lessons   []study.Lesson
	questions []study.QuizQuestion
	err       error
}

func (r *fakeStudyRepo) ListTracks(_ context.Context) ([]study.Track, error) {
	return r.tracks, r.err
}

func (r *fakeStudyRepo) GetTrack(_ context.Context, trackID string) (study.Track, error) {
	for _, t := range r.tracks {
		if t.TrackID == trackID {
			return t, nil
		}
	}
	return study.Track{}, study.ErrTrackNotFound
}

func (r *fakeStudyRepo) ListLessonsByTrack(_ context.Context, trackID string) ([]study.Lesson, error) {
	out := []study.Lesson{}
	for _, l := range r.lessons {
		if l.TrackID == trackID {
			out = append(out, l)
		}
	}
	return out, r.err
}

func (r *fakeStudyRepo) GetLesson(_ context.Context, lessonID string) (study.Lesson, error) {
	for _, l := range r.lessons {
		if l.LessonID == lessonID {
			return l, nil
		}
	}
	return study.Lesson{}, study.ErrLessonNotFound
}

func (r *fakeStudyRepo) ListQuestionsByTrack(_ context.Context, trackID string, limit int) ([]study.QuizQuestion, error) {
	out := []study.QuizQuestion{}
	for _, q := range r.questions {
		if q.TrackID == trackID && len(out) < limit {
			out = append(out, q)
		}
	}
	return out, r.err
}

func (r *fakeStudyRepo) GetQuestion(_ context.Context, questionID string) (study.QuizQuestion, error) {
	for _, q := range r.questions {
		if q.QuestionID == questionID {
			return q, nil
		}
	}
	return study.QuizQuestion{}, study.ErrQuestionNotFound
}

func (r *fakeStudyRepo) CountTracks(_ context.Context) (int64, error) {
	return int64(len(r.tracks)), r.err
}

func (r *fakeStudyRepo) CountLessonsByTrack(ctx context.Context, trackID string) (int64, error) {
	ls, err := r.ListLessonsByTrack(ctx, trackID)
	return int64(len(ls)), err
}

func (r *fakeStudyRepo) InsertTracks(_ context.Context, items []study.Track) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.tracks = append(r.tracks, items...)
	return len(items), nil
}

func (r *fakeStudyRepo) InsertLessons(_ context.Context, items []study.Lesson) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.lessons = append(r.lessons, items...)
	return len(items), nil
}

func (r *fakeStudyRepo) InsertQuestions(_ context.Context, items []study.QuizQuestion) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.questions = append(r.questions, items...)
	return len(items), nil
}

type fakeCatalogRepo struct {
	countries []catalog.Country
	regions   []catalog.Region
	grapes    []catalog.Grape
	aromas    []catalog.AromaTag
	err       error
}

func (r *fakeCatalogRepo) ListCountries(_ context.Context, worldType string) ([]catalog.Country, error) {
	out := []catalog.Country{}
	for _, c := range r.countries {
		if worldType == "" || c.WorldType == worldType {
			out = append(out, c)
		}
	}
	return out, r.err
}

func (r *fakeCatalogRepo) GetCountry(_ context.Context, countryID string) (catalog.Country, error) {
	for _, c := range r.countries {
		if c.CountryID == countryID {
			return c, nil
		}
	}
	return catalog.Country{}, catalog.ErrCountryNotFound
}

func (r *fakeCatalogRepo) ListRegions(_ context.Context, f catalog.RegionFilter) ([]catalog.Region, error) {
	out := []catalog.Region{}
	for _, reg := range r.regions {
		if f.CountryID != "" && reg.CountryID != f.CountryID {
			continue
		}
		if f.Grape != "" && !contains(reg.MainGrapes, f.Grape) {
			continue
		}
		out = append(out, reg)
	}
	return out, r.err
}

func (r *fakeCatalogRepo) GetRegion(_ context.Context, regionID string) (catalog.Region, error) {
	for _, reg := range r.regions {
		if reg.RegionID == regionID {
			return reg, nil
		}
	}
	return catalog.Region{}, catalog.ErrRegionNotFound
}

func (r *fakeCatalogRepo) ListGrapes(_ context.Context, f catalog.GrapeFilter) ([]catalog.Grape, error) {
	out := []catalog.Grape{}
	for _, g := range r.grapes {
		if f.GrapeType != "" && g.GrapeType != f.GrapeType {
			continue
		}
		if f.Region != "" && !contains(g.BestRegions, f.Region) {
			continue
		}
		if f.Aroma != "" && !contains(g.AromaticNotes, f.Aroma) && !contains(g.FlavorNotes, f.Aroma) {
			continue
		}
		out = append(out, g)
	}
	return out, r.err
}

func (r *fakeCatalogRepo) GetGrape(_ context.Context, grapeID string) (catalog.Grape, error) {
	for _, g := range r.grapes {
		if g.GrapeID == grapeID {
			return g, nil
		}
	}
	return catalog.Grape{}, catalog.ErrGrapeNotFound
}

func (r *fakeCatalogRepo) ListAromas(_ context.Context, category string) ([]catalog.AromaTag, error) {
	out := []catalog.AromaTag{}
	for _, a := range r.aromas {
		if category == "" || a.Category == category {
			out = append(out, a)
		}
	}
	return out, r.err
}

func (r *fakeCatalogRepo) GetAroma(_ context.Context, tagID string) (catalog.AromaTag, error) {
	for _, a := range r.aromas {
		if a.TagID == tagID {
			return a, nil
		}
	}
	return catalog.AromaTag{}, catalog.ErrAromaNotFound
}

func (r *fakeCatalogRepo) SearchCountries(_ context.Context, q string, _ int) ([]catalog.Country, error) {
	out := []catalog.Country{}
	for _, c := range r.countries {
		if containsFold(c.NamePT, q) || containsFold(c.NameEN, q) {
			out = append(out, c)
		}
	}
	return out, r.err
}

func (r *fakeCatalogRepo) SearchRegions(_ context.Context, q string, _ int) ([]catalog.Region, error) {
	out := []catalog.Region{}
	for _, reg := range r.regions {
		if containsFold(reg.Name, q) {
			out = append(out, reg)
		}
	}
	return out, r.err
}

func (r *fakeCatalogRepo) SearchGrapes(_ context.Context, q string, _ int) ([]catalog.Grape, error) {
	out := []catalog.Grape{}
	for _, g := range r.grapes {
		if containsFold(g.Name, q) {
			out = append(out, g)
		}
	}
	return out, r.err
}

func (r *fakeCatalogRepo) CountCountries(_ context.Context) (int64, error) {
	return int64(len(r.countries)), r.err
}

func (r *fakeCatalogRepo) InsertCountries(_ context.Context, items []catalog.Country) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.countries = append(r.countries, items...)
	return len(items), nil
}

func (r *fakeCatalogRepo) ExistingRegionIDs(_ context.Context) (map[string]bool, error) {
	ids := map[string]bool{}
	for _, reg := range r.regions {
		ids[reg.RegionID] = true
	}
	return ids, r.err
}

func (r *fakeCatalogRepo) InsertRegions(_ context.Context, items []catalog.Region) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.regions = append(r.regions, items...)
	return len(items), nil
}

func (r *fakeCatalogRepo) ExistingGrapeIDs(_ context.Context) (map[string]bool, error) {
	ids := map[string]bool{}
	for _, g := range r.grapes {
		ids[g.GrapeID] = true
	}
	return ids, r.err
}

func (r *fakeCatalogRepo) InsertGrapes(_ context.Context, items []catalog.Grape) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.grapes = append(r.grapes, items...)
	return len(items), nil
}

func (r *fakeCatalogRepo) InsertAromas(_ context.Context, items []catalog.AromaTag) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.aromas = append(r.aromas, items...)
	return len(items), nil
}

type mockJWT struct {
	generated string
	claims    jwt.Claims
	genErr    error
	valErr    error
}

func (m mockJWT) Generate(userID string) (string, error) {
	if m.genErr != nil {
		return "", m.genErr
	}
	if m.generated != "" {
		return m.generated, nil
	}
	return "jwt-" + userID, nil
}

func (m mockJWT) Validate(string) (jwt.Claims, error) {
	if m.valErr != nil {
		return jwt.Claims{}, m.valErr
	}
	return m.claims, nil
}

type mockProvider struct {
	data identity.SessionData
	err  error
}

func (m mockProvider) ExchangeSession(context.Context, string) (identity.SessionData, error) {
	return m.data, m.err
}

type fakeCache struct {
	store map[string][]byte
	sets  int
	gets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.gets++
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = raw
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func contains(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
