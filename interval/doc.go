/*Package interval represents sequencing reads as half-open coordinate
  intervals.  A read record "start,length" covers [start, start+length); a
  read at 100 with length 50 covers positions 100..149 and nothing else.
  Each interval carries a multiplicity (how many times the identical record
  occurred in the input) which acts as a weight during coverage
  accumulation.
  Positions are machine ints rather than the int32 BAM would permit, since
  the text tables consumed here place no width restriction on coordinates.
*/
package interval
