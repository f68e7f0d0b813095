package boost

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/lotsa"
)

func resetPrototype(t *testing.T) {
	reset := func() {
		prototypeOnce = sync.Once{}
		prototypeBoosted.Store(false)
	}
	reset()
	t.Cleanup(reset)
}

func TestIsArray(t *testing.T) {
	assert.True(t, IsArray([]int{1, 2, 3}))
	assert.True(t, IsArray([]int(nil)))
	assert.True(t, IsArray([3]int{}))
	assert.True(t, IsArray(New[string]()))

	assert.False(t, IsArray(nil))
	assert.False(t, IsArray("abc"))
	assert.False(t, IsArray(map[int]int{0: 1}))
	assert.False(t, IsArray(make(chan int)))
	assert.False(t, IsArray(&[]int{}))
	assert.False(t, IsArray(struct{ Length int }{Length: 0}))
}

func TestIsBoostedArray(t *testing.T) {
	resetPrototype(t)

	assert.False(t, IsBoostedArray([]int{1, 2, 3}))
	assert.False(t, IsBoostedArray(nil))
	assert.False(t, IsBoostedArray(fakeTagged{}))
	assert.True(t, IsBoostedArray(New[int]()))
	assert.True(t, IsBoostedArray(Boost([]int{1, 2, 3})))
}

type fakeTagged struct{}

func (fakeTagged) IsBoosted() bool { return true }

func TestBoostPrototype(t *testing.T) {
	t.Run("every array is boosted", func(t *testing.T) {
		resetPrototype(t)

		existing := []int{1, 2, 3}
		assert.False(t, IsBoostedArray(existing))

		BoostPrototype()

		assert.True(t, PrototypeBoosted())
		assert.True(t, IsBoostedArray(existing))
		assert.True(t, IsBoostedArray([]string{}))
		assert.True(t, IsBoostedArray([2]bool{}))
		assert.False(t, IsBoostedArray("abc"))

		boosted, err := Prop([]int{}, BOOSTED_PROPNAME)
		if assert.NoError(t, err) {
			assert.Equal(t, true, boosted)
		}
	})

	t.Run("calling it several times", func(t *testing.T) {
		resetPrototype(t)

		BoostPrototype()
		BoostPrototype()
		assert.True(t, PrototypeBoosted())
	})

	t.Run("concurrent calls", func(t *testing.T) {
		resetPrototype(t)

		var boostedCount atomic.Int64
		lotsa.Ops(1000, 8, func(i, thread int) {
			if i%2 == 0 {
				BoostPrototype()
			} else if IsBoostedArray([]int{i}) {
				boostedCount.Add(1)
			}
		})

		assert.True(t, PrototypeBoosted())
		assert.True(t, IsBoostedArray([]int{}))
		assert.LessOrEqual(t, boostedCount.Load(), int64(500))
	})

	t.Run("debug log", func(t *testing.T) {
		resetPrototype(t)
		t.Cleanup(func() {
			Configure(Config{Logger: zerolog.Nop()})
		})

		buf := bytes.NewBuffer(nil)
		Configure(Config{
			Logger:         zerolog.New(buf).Level(zerolog.DebugLevel),
			BoostPrototype: true,
		})

		assert.True(t, PrototypeBoosted())
		assert.Contains(t, buf.String(), `"src":"boost"`)
		assert.Contains(t, buf.String(), "array prototype boosted")

		//only the first call logs
		buf.Reset()
		BoostPrototype()
		assert.Empty(t, buf.String())
	})

	t.Run("configuration without boosting", func(t *testing.T) {
		resetPrototype(t)
		t.Cleanup(func() {
			Configure(Config{Logger: zerolog.Nop()})
		})

		Configure(Config{Logger: zerolog.Nop()})
		assert.False(t, PrototypeBoosted())
	})
}

func TestConcurrentReads(t *testing.T) {
	array := New(1, 2, 3, 4, 5, 6)

	var total atomic.Int64
	lotsa.Ops(200, 4, func(i, thread int) {
		sum, err := array.Reduce(func(acc, e int) int { return acc + e }, 0)
		if err != nil {
			panic(err)
		}
		total.Add(int64(sum))
	})

	assert.EqualValues(t, 200*21, total.Load())
}
