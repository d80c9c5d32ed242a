// This file is part of vc64.
//
// vc64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vc64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vc64.  If not, see <https://www.gnu.org/licenses/>.

package memory

// Error patterns for the memory package. Test for them with curated.Is() or
// curated.Has().
const (
	InvalidArgument = "memory: invalid argument: %v"
	IOFailure       = "memory: io failure: %v"
	Overflow        = "memory: overflow: %v"
	BiosLoadFailure = "memory: bios load failure: %v"
)
