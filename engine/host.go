package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/icu4x-go/capi"
	"github.com/wippyai/icu4x-go/errors"
)

// ModuleName is the import module guests use for boundary functions.
const ModuleName = "icu4x"

// Instantiate registers every export of the surface as a host function of
// module "icu4x". Each call runs against the calling guest's memory. A
// protocol fault traps the guest.
func Instantiate(ctx context.Context, r wazero.Runtime, exports *capi.Exports) (api.Module, error) {
	builder := r.NewHostModuleBuilder(ModuleName)
	surface := exports.Surface()

	for _, name := range surface.Names() {
		sym, _ := surface.Lookup(name)
		params, results := sym.Flat()
		builder.NewFunctionBuilder().
			WithGoModuleFunction(hostFunc(exports, name, params, results), i32s(params), i32s(results)).
			WithName(name).
			Export(name)
	}

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Registration(ModuleName, "*", err)
	}
	Logger().Debug("host module instantiated",
		zap.String("module", ModuleName), zap.Int("functions", len(surface.Names())))
	return mod, nil
}

func hostFunc(exports *capi.Exports, name string, nparams, nresults int) api.GoModuleFunc {
	return func(ctx context.Context, mod api.Module, stack []uint64) {
		mem := WrapMemory(mod.Memory())
		if mem == nil {
			panic(errors.New(errors.PhaseCall, errors.KindNilPointer).
				Detail("%s called from a module without memory", name).
				Build())
		}

		params := make([]uint32, nparams)
		for i := range params {
			params[i] = api.DecodeU32(stack[i])
		}

		result, err := exports.Call(mem, name, params...)
		if err != nil {
			Logger().Debug("boundary call trapped", zap.String("func", name), zap.Error(err))
			panic(err)
		}
		if nresults == 1 {
			stack[0] = api.EncodeU32(result)
		}
	}
}

func i32s(n int) []api.ValueType {
	types := make([]api.ValueType, n)
	for i := range types {
		types[i] = api.ValueTypeI32
	}
	return types
}
