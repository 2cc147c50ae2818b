package profile_svc

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseOpts() ProfileOpts {
	return ProfileOpts{
		Iterations:       lo.ToPtr(5),
		Warmup:           lo.ToPtr(5),
		Threads:          lo.ToPtr(1),
		InputType:        lo.ToPtr("float"),
		Vulkan:           lo.ToPtr(false),
		ReportPEP:        lo.ToPtr(true),
		CachingAllocator: lo.ToPtr(true),
		ForceInline:      lo.ToPtr(false),
	}
}

func TestBuildBenchOptionsBundledInput(t *testing.T) {
	o := baseOpts()
	o.BundledInput = lo.ToPtr(0)

	args, err := buildBenchOptions("/data/local/tmp/net.pt", o)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--iter=5",
		"--caffe2_threadpool_android_cap=1",
		"--warmup=5",
		`--input_type="float"`,
		"--vulkan=false",
		"--report_pep=true",
		"--use_caching_allocator=true",
		"--caffe2_threadpool_force_inline=false",
		`--model="/data/local/tmp/net.pt"`,
		"--use_bundled_input=0",
	}, args)
}

func TestBuildBenchOptionsInputDims(t *testing.T) {
	o := baseOpts()
	o.InputDims = [][]int{{1, 3, 224, 224}, {1, 10}}
	o.InputTypes = []string{"float", "int"}

	args, err := buildBenchOptions("/data/local/tmp/net.pt", o)
	require.NoError(t, err)

	assert.Equal(t, `--input_type="float;int"`, args[3])
	assert.Equal(t, `--input_dims="1,3,224,224;1,10"`, args[len(args)-1])
	assert.NotContains(t, args, "--use_bundled_input=0")
}

func TestBuildBenchOptionsRepeatsBaseType(t *testing.T) {
	o := baseOpts()
	o.InputDims = [][]int{{1, 3, 224, 224}, {1, 3, 224, 224}}

	args, err := buildBenchOptions("/data/local/tmp/net.pt", o)
	require.NoError(t, err)
	assert.Equal(t, `--input_type="float;float"`, args[3])
}

func TestBuildBenchOptionsBundledWinsOverDims(t *testing.T) {
	o := baseOpts()
	o.BundledInput = lo.ToPtr(2)
	o.InputDims = [][]int{{1, 3, 224, 224}}

	args, err := buildBenchOptions("/data/local/tmp/net.pt", o)
	require.NoError(t, err)

	assert.Contains(t, args, "--use_bundled_input=2")
	for _, a := range args {
		assert.NotContains(t, a, "input_dims")
	}
}

func TestBuildBenchOptionsNegativeBundledIgnored(t *testing.T) {
	o := baseOpts()
	o.BundledInput = lo.ToPtr(-1)
	o.InputDims = [][]int{{1, 10}}

	args, err := buildBenchOptions("/data/local/tmp/net.pt", o)
	require.NoError(t, err)
	assert.Equal(t, `--input_dims="1,10"`, args[len(args)-1])
}

func TestBuildBenchOptionsNoInputSpec(t *testing.T) {
	_, err := buildBenchOptions("/data/local/tmp/net.pt", baseOpts())
	require.ErrorIs(t, err, ErrNoInputSpec)
}

func TestBuildBenchOptionsTypeCountMismatch(t *testing.T) {
	o := baseOpts()
	o.InputDims = [][]int{{1, 3, 224, 224}, {1, 10}}
	o.InputTypes = []string{"float"}

	_, err := buildBenchOptions("/data/local/tmp/net.pt", o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestAffinityPrefix(t *testing.T) {
	prefix, err := affinityPrefix([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"taskset", "-a", "0x7"}, prefix)

	prefix, err = affinityPrefix([]int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"taskset", "-a", "0xa"}, prefix)

	prefix, err = affinityPrefix(nil)
	require.NoError(t, err)
	assert.Nil(t, prefix)

	_, err = affinityPrefix([]int{70})
	require.Error(t, err)
}

func TestJoinDims(t *testing.T) {
	assert.Equal(t, "1,3,224,224", joinDims([][]int{{1, 3, 224, 224}}))
	assert.Equal(t, "1,3,224,224;1,10", joinDims([][]int{{1, 3, 224, 224}, {1, 10}}))
}
