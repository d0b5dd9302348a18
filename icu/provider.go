package icu

import (
	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/capi"
	"github.com/wippyai/icu4x-go/resource"
)

// DataProvider owns a boundary DataProvider handle.
type DataProvider struct {
	env *Env
	own owned
}

func newDataProvider(env *Env, h resource.Handle) *DataProvider {
	p := &DataProvider{env: env}
	adopt(p, &p.own, env, capi.TypeDataProvider, h, env.b.DataProvider().Destroy)
	return p
}

// CompiledProvider returns a provider over the built-in data.
func (e *Env) CompiledProvider() *DataProvider {
	return newDataProvider(e, e.b.DataProvider().CreateCompiled())
}

// EmptyProvider returns a provider with no data. Every data-backed
// operation fails with a DataError.
func (e *Env) EmptyProvider() *DataProvider {
	return newDataProvider(e, e.b.DataProvider().CreateEmpty())
}

// ProviderFromYAML returns a provider described by a YAML document.
func (e *Env) ProviderFromYAML(content string) (*DataProvider, error) {
	return e.providerResult(e.b.DataProvider().CreateFromYAML(content))
}

// ProviderFromFile returns a provider read from a YAML file.
func (e *Env) ProviderFromFile(path string) (*DataProvider, error) {
	return e.providerResult(e.b.DataProvider().CreateFS(path))
}

func (e *Env) providerResult(r abi.Result[resource.Handle, capi.DataError]) (*DataProvider, error) {
	h, ok := r.Get()
	if !ok {
		return nil, mustLift(dataErrorMap, r.Err())
	}
	return newDataProvider(e, h), nil
}

// DataProviderFromHandle adopts an owned handle. The caller gives up
// ownership of h.
func DataProviderFromHandle(env *Env, h resource.Handle) *DataProvider {
	return newDataProvider(env, h)
}

// Handle returns the boundary handle. It stays owned by p.
func (p *DataProvider) Handle() resource.Handle {
	return p.own.live()
}

// Close destroys the provider. Calendars created from it stay valid.
func (p *DataProvider) Close() error {
	return p.own.close()
}
