package identity

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// keySource yields the verification option for jwt.Parse.
type keySource interface {
	parseOption(ctx context.Context) (jwt.ParseOption, error)
}

type secretKey struct {
	secret []byte
}

func (k secretKey) parseOption(context.Context) (jwt.ParseOption, error) {
	return jwt.WithKey(jwa.HS256, k.secret), nil
}

// remoteKeySet caches the JWKS document for ttl.
type remoteKeySet struct {
	url    string
	ttl    time.Duration
	client *http.Client

	mu      sync.RWMutex
	set     jwk.Set
	expires time.Time
}

func (k *remoteKeySet) parseOption(ctx context.Context) (jwt.ParseOption, error) {
	set, err := k.get(ctx)
	if err != nil {
		return nil, err
	}
	return jwt.WithKeySet(set), nil
}

func (k *remoteKeySet) get(ctx context.Context) (jwk.Set, error) {
	k.mu.RLock()
	if k.set != nil && time.Now().Before(k.expires) {
		set := k.set
		k.mu.RUnlock()
		return set, nil
	}
	k.mu.RUnlock()

	k.mu.Lock()
	defer k.mu.Unlock()
	if k.set != nil && time.Now().Before(k.expires) {
		return k.set, nil
	}
	set, err := jwk.Fetch(ctx, k.url, jwk.WithHTTPClient(k.client))
	if err != nil {
		return nil, err
	}
	k.set = set
	k.expires = time.Now().Add(k.ttl)
	return set, nil
}
