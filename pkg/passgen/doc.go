/*
Package passgen assembles passwords from a CharacterStock using bytes from a keystream.

# How it works:

A CharacterStock is an ordered list of character classes, each with a minimum number of characters that must be drawn from it.
Generate first forces the keystream to a fresh block, then draws each class's minimum in stock order.
The remaining length is filled from all classes combined, and the result is shuffled with pairwise swaps so the construction order doesn't show.

OptionSet models the four standard classes (lower case, upper case, numbers, and special characters) with a target length, and can be saved by name in Presets.

# General guidelines:
  - The result is never shorter than the sum of the class minimums. Use OptionSet.EffectiveLength to see what will actually be produced.
  - Characters are selected with a byte modulo the alphabet size, so alphabets that evenly divide 256 avoid a small selection bias.
  - Class alphabets are treated as Unicode characters, not bytes.
*/
package passgen
