package capi

import (
	stderrors "errors"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/provider"
	"github.com/wippyai/icu4x-go/resource"
)

type dataProviderFuncs struct {
	lib *Library
}

func (f dataProviderFuncs) CreateCompiled() resource.Handle {
	f.lib.calls.Add(1)
	return f.lib.insert(resource.TypeDataProvider, f.lib.compiled)
}

func (f dataProviderFuncs) CreateEmpty() resource.Handle {
	f.lib.calls.Add(1)
	return f.lib.insert(resource.TypeDataProvider, provider.DataProvider(provider.Empty()))
}

func (f dataProviderFuncs) CreateFromYAML(content string) abi.Result[resource.Handle, DataError] {
	f.lib.calls.Add(1)
	if !utf8.ValidString(content) {
		return abi.Err[resource.Handle](DataErrorDeserialize)
	}
	p, err := provider.ParseYAML([]byte(content))
	if err != nil {
		f.lib.logger.Debug("provider document rejected", zap.Error(err))
		return abi.Err[resource.Handle](dataErrorFor(err))
	}
	return abi.Ok[resource.Handle, DataError](f.lib.insert(resource.TypeDataProvider, provider.DataProvider(p)))
}

func (f dataProviderFuncs) CreateFS(path string) abi.Result[resource.Handle, DataError] {
	f.lib.calls.Add(1)
	if !utf8.ValidString(path) {
		return abi.Err[resource.Handle](DataErrorIo)
	}
	p, err := provider.LoadFile(path)
	if err != nil {
		f.lib.logger.Debug("provider file rejected", zap.String("path", path), zap.Error(err))
		return abi.Err[resource.Handle](dataErrorFor(err))
	}
	return abi.Ok[resource.Handle, DataError](f.lib.insert(resource.TypeDataProvider, provider.DataProvider(p)))
}

func (f dataProviderFuncs) Destroy(h resource.Handle) {
	f.lib.destroy(resource.TypeDataProvider, h)
}

// dataErrorFor maps provider loading failures onto the closed DataError set.
func dataErrorFor(err error) DataError {
	var ioErr *provider.IOError
	var parseErr *provider.ParseError
	switch {
	case stderrors.As(err, &ioErr):
		return DataErrorIo
	case stderrors.As(err, &parseErr):
		return DataErrorDeserialize
	default:
		return DataErrorUnknown
	}
}
