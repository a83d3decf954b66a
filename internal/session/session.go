// Package session holds the state of the single storefront session: who is
// logged in, which page is showing and the transient UI flags around it.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/kv"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

type Page string

const (
	PageHome     Page = "home"
	PageProduct  Page = "product"
	PageLogin    Page = "login"
	PageCheckout Page = "checkout"
	PageProfile  Page = "profile"
	PageAdmin    Page = "admin"
)

func (p Page) Valid() bool {
	switch p {
	case PageHome, PageProduct, PageLogin, PageCheckout, PageProfile, PageAdmin:
		return true
	}
	return false
}

const (
	LangAr      = "ar"
	LangEn      = "en"
	DefaultLang = LangAr
)

var (
	ErrNoUser      = errors.New("not logged in")
	ErrInvalidLang = errors.New("language must be ar or en")
	ErrInvalidPage = errors.New("unknown page")
)

// View is what the navbar and page router need to render.
type View struct {
	User              *user.User `json:"user"`
	Page              Page       `json:"page"`
	SelectedProductID string     `json:"selectedProductId,omitempty"`
	SearchQuery       string     `json:"searchQuery"`
	CartOpen          bool       `json:"cartOpen"`
	Lang              string     `json:"lang"`
	Dir               string     `json:"dir"`
	StoreView         bool       `json:"storeView"`
}

type State struct {
	user    *kv.Slice[*user.User]
	loginID *kv.Slice[string]
	lang    *kv.Slice[string]

	mu        sync.Mutex
	page      Page
	productID string
	search    string
	cartOpen  bool
}

func New(ctx context.Context, store kv.Store) (*State, error) {
	u, err := kv.OpenSlice[*user.User](ctx, store, kv.KeyUser, nil)
	if err != nil {
		return nil, err
	}
	id, err := kv.OpenSlice(ctx, store, kv.KeyLoginID, "")
	if err != nil {
		return nil, err
	}
	if err := importRawLang(ctx, store); err != nil {
		return nil, err
	}
	l, err := kv.OpenSlice(ctx, store, kv.KeyLang, DefaultLang)
	if err != nil {
		return nil, err
	}
	return &State{user: u, loginID: id, lang: l, page: PageHome}, nil
}

// importRawLang rewrites a bare ar or en, as the browser build stores the
// language, into the JSON string the lang slice decodes.
func importRawLang(ctx context.Context, store kv.Store) error {
	raw, ok, err := store.Get(ctx, kv.KeyLang)
	if err != nil {
		return fmt.Errorf("session: read lang: %w", err)
	}
	if !ok {
		return nil
	}
	if v := string(raw); v == LangAr || v == LangEn {
		return kv.Save(ctx, store, kv.KeyLang, v)
	}
	return nil
}

// User returns a copy of the logged-in user.
func (s *State) User() (user.User, bool) {
	u := s.user.Get()
	if u == nil {
		return user.User{}, false
	}
	return u.Clone(), true
}

// Login stores u and starts a new login ID, so tokens from any earlier
// login stop matching even when the same user logs in again.
func (s *State) Login(ctx context.Context, u user.User) error {
	u = u.Clone()
	if err := s.user.Update(ctx, func(*user.User) (*user.User, error) {
		return &u, nil
	}); err != nil {
		return err
	}
	id := util.NewID()
	return s.loginID.Update(ctx, func(string) (string, error) { return id, nil })
}

// LoginID identifies the current login; it is empty when nobody is logged in.
func (s *State) LoginID() string {
	return s.loginID.Get()
}

// Logout clears the user and returns to the home page.
func (s *State) Logout(ctx context.Context) error {
	if err := s.user.Update(ctx, func(*user.User) (*user.User, error) {
		return nil, nil
	}); err != nil {
		return err
	}
	if err := s.loginID.Update(ctx, func(string) (string, error) { return "", nil }); err != nil {
		return err
	}
	s.mu.Lock()
	s.page = PageHome
	s.mu.Unlock()
	return nil
}

// UpdateUser applies fn to the logged-in user and stores the result.
func (s *State) UpdateUser(ctx context.Context, fn func(u user.User) (user.User, error)) (user.User, error) {
	var out user.User
	err := s.user.Update(ctx, func(cur *user.User) (*user.User, error) {
		if cur == nil {
			return nil, ErrNoUser
		}
		next, err := fn(cur.Clone())
		if err != nil {
			return nil, err
		}
		out = next.Clone()
		return &next, nil
	})
	return out, err
}

func (s *State) Lang() string {
	return s.lang.Get()
}

func (s *State) SetLang(ctx context.Context, lang string) error {
	if lang != LangAr && lang != LangEn {
		return ErrInvalidLang
	}
	return s.lang.Update(ctx, func(string) (string, error) { return lang, nil })
}

// ToggleLang switches between Arabic and English.
func (s *State) ToggleLang(ctx context.Context) (string, error) {
	next := LangAr
	if s.Lang() == LangAr {
		next = LangEn
	}
	return next, s.SetLang(ctx, next)
}

// Navigate moves to page p and returns the page that actually renders.
// The admin dashboard falls back to home for non-admins; pages that need a
// user fall back to login; the product page needs a selected product.
func (s *State) Navigate(p Page) (Page, error) {
	if !p.Valid() {
		return "", ErrInvalidPage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = p
	return s.resolve(), nil
}

func (s *State) resolve() Page {
	u := s.user.Get()
	switch s.page {
	case PageAdmin:
		if u == nil || !u.IsAdmin() {
			return PageHome
		}
	case PageProduct:
		if s.productID == "" {
			return PageHome
		}
	case PageProfile, PageCheckout:
		if u == nil {
			return PageLogin
		}
	}
	return s.page
}

func (s *State) OpenProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productID = id
	s.page = PageProduct
}

func (s *State) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = q
}

func (s *State) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *State) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = open
}

// ProceedToCheckout closes the cart sidebar and goes to checkout, or to
// login first when nobody is logged in. With an empty cart nothing changes.
func (s *State) ProceedToCheckout(cartHasItems bool) Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !cartHasItems {
		return s.resolve()
	}
	s.cartOpen = false
	if s.user.Get() == nil {
		s.page = PageLogin
	} else {
		s.page = PageCheckout
	}
	return s.page
}

// AfterLogin picks the landing page once a user has logged in.
func (s *State) AfterLogin(cartHasItems bool) Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cartHasItems {
		s.page = PageCheckout
	} else {
		s.page = PageHome
	}
	return s.page
}

func (s *State) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	lang := s.lang.Get()
	dir := "rtl"
	if lang == LangEn {
		dir = "ltr"
	}
	var u *user.User
	if cur := s.user.Get(); cur != nil {
		c := cur.Clone()
		u = &c
	}
	page := s.resolve()
	return View{
		User:              u,
		Page:              page,
		SelectedProductID: s.productID,
		SearchQuery:       s.search,
		CartOpen:          s.cartOpen,
		Lang:              lang,
		Dir:               dir,
		StoreView:         page != PageAdmin,
	}
}
